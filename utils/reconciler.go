package utils

import (
	"log"

	"agazian/config"
	"agazian/services"

	"github.com/robfig/cron/v3"
)

// StartProgressReconciler schedules the periodic sweep that removes progress
// rows whose course no longer exists. Returns the cron so the caller can stop
// it on shutdown.
func StartProgressReconciler(progression *services.ProgressionService) *cron.Cron {
	log.Println("[RECONCILER] Initializing orphaned-progress reconciler...")

	c := cron.New()

	spec := config.AppConfig.ReconcileSpec
	if _, err := c.AddFunc(spec, func() {
		log.Println("[RECONCILER] Running orphaned-progress sweep...")
		removed, err := progression.ReconcileOrphanedProgress()
		if err != nil {
			log.Printf("[RECONCILER] Sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("[RECONCILER] Removed %d orphaned progress records", removed)
		}
	}); err != nil {
		log.Printf("[RECONCILER] Invalid cron spec %q: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("[RECONCILER] Reconciler started - schedule %q", spec)
	return c
}
