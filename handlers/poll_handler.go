package handlers

import (
	"bantora-api/helper"
	"bantora-api/models"
	"bantora-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PollHandler struct {
	pollService services.PollService
	voteService services.VoteService
	Helper      *helper.HTTPHelper
}

func NewPollHandler(pollService services.PollService, voteService services.VoteService) *PollHandler {
	return &PollHandler{pollService: pollService, voteService: voteService}
}

func (h *PollHandler) GetPolls(c *gin.Context) {
	var params models.PollListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	polls, err := h.pollService.GetActivePolls(params)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", polls)
}

func (h *PollHandler) GetPopularPolls(c *gin.Context) {
	polls, err := h.pollService.GetPopularPolls()
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", polls)
}

func (h *PollHandler) GetPoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid poll ID", h.Helper.EmptyJsonMap())
		return
	}

	poll, err := h.pollService.GetPollByID(id)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", poll)
}

func (h *PollHandler) GetPollSourceIdeas(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid poll ID", h.Helper.EmptyJsonMap())
		return
	}

	ideaIDs, err := h.pollService.GetSourceIdeaIDs(id)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ideaIDs)
}

// SubmitVote accepts both identified and anonymous ballots. The optional
// auth middleware sets user_phone when a valid token is present.
func (h *PollHandler) SubmitVote(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid poll ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	userPhone := ""
	if phone, exists := c.Get("user_phone"); exists {
		userPhone = phone.(string)
	}

	meta := services.VoteMetadata{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	poll, err := h.voteService.SubmitVote(pollID, req.OptionID, userPhone, req.Anonymous, meta)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote recorded", poll)
}
