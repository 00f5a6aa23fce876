package handlers

import (
	"bantora-api/helper"
	"bantora-api/services"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	aiService services.AiService
	Helper    *helper.HTTPHelper
}

func NewPipelineHandler(aiService services.AiService) *PipelineHandler {
	return &PipelineHandler{aiService: aiService}
}

// RunPipeline triggers one ranker-to-materializer pass. Idempotent in
// effect: already-processed ideas are no longer PENDING and get skipped.
func (h *PipelineHandler) RunPipeline(c *gin.Context) {
	if err := h.aiService.RunPipelineOnce(c.Request.Context()); err != nil {
		h.Helper.SendErrorByType(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pipeline run completed", h.Helper.EmptyJsonMap())
}
