package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/services"
	"github.com/jaypeewhat/rooms-sana/utils"
)

type SubmissionController struct {
	submissions *services.SubmissionService
}

func NewSubmissionController(submissions *services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissions: submissions}
}

func (sc *SubmissionController) Create(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Missing required fields: studentName, workType, content")
		return
	}

	id, err := sc.submissions.Submit(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"message": "Work submission saved successfully",
	})
}

func (sc *SubmissionController) List(c *gin.Context) {
	submissions, err := sc.submissions.ListAll(c.Request.Context())
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	utils.Success(c, submissions)
}
