package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/services/scheduling"
	"glowbook/utils"
)

// StartOverlayWarmer schedules a nightly rebuild of every service's cached
// calendar overlay, so the first request each morning is a cache hit and
// yesterday drops out of the window on time. Returns the cron runner so the
// caller can Stop it on shutdown.
func StartOverlayWarmer(catalog catalogRepo.CatalogRepository, scheduler scheduling.SchedulingService) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()

	// Shortly after midnight, local time.
	_, err := c.AddFunc("5 0 * * *", func() {
		warmAllOverlays(catalog, scheduler)
	})
	if err != nil {
		logger.Error("failed to schedule overlay warmer", zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("overlay warmer scheduled")
	return c
}

func warmAllOverlays(catalog catalogRepo.CatalogRepository, scheduler scheduling.SchedulingService) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	services, err := catalog.ListServices(ctx)
	if err != nil {
		logger.Error("overlay warmer: failed to list services", zap.Error(err))
		return
	}

	warmed := 0
	for _, svc := range services {
		if err := scheduler.RefreshCalendar(ctx, svc.ID); err != nil {
			logger.Warn("overlay warmer: refresh failed",
				zap.String("serviceID", svc.ID), zap.Error(err))
			continue
		}
		warmed++
	}
	logger.Info("overlay warmer: done",
		zap.Int("services", len(services)), zap.Int("warmed", warmed))
}
