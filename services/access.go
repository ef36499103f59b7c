package services

import (
	"github.com/jaypeewhat/rooms-sana/models"
)

// Authorize checks the actor's claimed role against the required set.
// A missing actor or a role outside the set yields ErrPermissionDenied.
// The role is taken at face value; nothing here verifies the claim.
func Authorize(actor *models.Actor, required ...models.Role) error {
	if actor == nil {
		return ErrPermissionDenied
	}
	for _, role := range required {
		if actor.Role == role {
			return nil
		}
	}
	return ErrPermissionDenied
}
