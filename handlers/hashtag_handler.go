package handlers

import (
	"strconv"

	"bantora-api/helper"
	"bantora-api/services"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagService services.HashtagService
	Helper         *helper.HTTPHelper
}

func NewHashtagHandler(hashtagService services.HashtagService) *HashtagHandler {
	return &HashtagHandler{hashtagService: hashtagService}
}

func (h *HashtagHandler) GetTrendingHashtags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	hashtags, err := h.hashtagService.GetTrendingHashtags(limit)
	if err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", hashtags)
}
