// Package job schedules the idea-to-poll pipeline: one pass at startup and
// one per configured interval afterwards.
package job

import (
	"context"
	"time"

	"bantora-api/services"

	"github.com/rs/zerolog"
)

type IdeaProcessingJob struct {
	aiService services.AiService
	interval  time.Duration
	logger    zerolog.Logger
}

func NewIdeaProcessingJob(aiService services.AiService, interval time.Duration, logger zerolog.Logger) *IdeaProcessingJob {
	return &IdeaProcessingJob{
		aiService: aiService,
		interval:  interval,
		logger:    logger.With().Str("component", "idea_processing_job").Logger(),
	}
}

// Start launches the schedule in a goroutine and returns. The pipeline
// itself serializes overlapping runs, so a slow pass simply causes the next
// tick's trigger to be skipped rather than queued.
func (j *IdeaProcessingJob) Start(ctx context.Context) {
	go func() {
		j.logger.Info().Msg("checking for pending ideas on startup")
		j.runOnce(ctx)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				j.logger.Info().Msg("idea processing job stopped")
				return
			case <-ticker.C:
				j.logger.Info().Msg("starting scheduled idea processing run")
				j.runOnce(ctx)
			}
		}
	}()
}

func (j *IdeaProcessingJob) runOnce(ctx context.Context) {
	if err := j.aiService.RunPipelineOnce(ctx); err != nil {
		j.logger.Error().Err(err).Msg("pipeline run failed")
	}
}
