package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/services"
	"github.com/jaypeewhat/rooms-sana/utils"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

func (rc *RoomController) List(c *gin.Context) {
	rooms, err := rc.rooms.ListAll(c.Request.Context())
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	utils.Success(c, rooms)
}

func (rc *RoomController) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid room payload")
		return
	}

	room, err := rc.rooms.Create(c.Request.Context(), *req.Room, resolveActor(c, req.User))
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		utils.Fail(c, http.StatusForbidden, "Admin permission required")
	case errors.Is(err, services.ErrRoomNumberTaken):
		utils.Fail(c, http.StatusBadRequest, "Room number already exists")
	case err != nil:
		utils.Fail(c, http.StatusInternalServerError, "Failed to add room")
	default:
		utils.Success(c, room)
	}
}

func (rc *RoomController) Update(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid updates payload")
		return
	}

	updates, err := rc.rooms.Update(c.Request.Context(), c.Param("id"), *req.Updates, resolveActor(c, req.User))
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		utils.Fail(c, http.StatusForbidden, "Admin permission required")
	case errors.Is(err, services.ErrRoomNumberTaken):
		utils.Fail(c, http.StatusBadRequest, "Room number already exists")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.Fail(c, http.StatusNotFound, "Room not found")
	case err != nil:
		utils.Fail(c, http.StatusInternalServerError, "Failed to update room")
	default:
		utils.Success(c, updates)
	}
}

func (rc *RoomController) Delete(c *gin.Context) {
	// A missing body means a missing user, which is a permission failure
	// rather than a bad request, so the bind error is ignored here.
	var req dto.DeleteRoomRequest
	_ = c.ShouldBindJSON(&req)

	err := rc.rooms.Delete(c.Request.Context(), c.Param("id"), resolveActor(c, req.User))
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		utils.Fail(c, http.StatusForbidden, "Admin permission required")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.Fail(c, http.StatusNotFound, "Room not found")
	case err != nil:
		utils.Fail(c, http.StatusInternalServerError, "Failed to delete room")
	default:
		utils.Success(c, nil)
	}
}

func (rc *RoomController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid status payload")
		return
	}

	result, err := rc.rooms.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, resolveActor(c, req.User))
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		utils.Fail(c, http.StatusForbidden, "Permission required")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.Fail(c, http.StatusNotFound, "Room not found")
	case err != nil:
		utils.Fail(c, http.StatusInternalServerError, "Failed to update room status")
	default:
		utils.Success(c, result)
	}
}
