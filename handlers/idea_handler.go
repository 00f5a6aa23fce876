package handlers

import (
	"bantora-api/helper"
	"bantora-api/models"
	"bantora-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IdeaHandler struct {
	ideaService services.IdeaService
	Helper      *helper.HTTPHelper
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	userPhone, _ := c.Get("user_phone")

	var req models.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	idea, err := h.ideaService.CreateIdea(userPhone.(string), req)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Idea created successfully", idea)
}

func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	var params models.IdeaListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	ideas, err := h.ideaService.GetIdeas(params)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ideas)
}

func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid idea ID", h.Helper.EmptyJsonMap())
		return
	}

	idea, err := h.ideaService.GetIdeaByID(id)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", idea)
}

// UpvoteIdea is reachable without authentication; upvotes are unmetered
// signals, unlike poll votes.
func (h *IdeaHandler) UpvoteIdea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid idea ID", h.Helper.EmptyJsonMap())
		return
	}

	idea, err := h.ideaService.UpvoteIdea(id)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Idea upvoted", idea)
}
