package utils

import (
	"eduflow/repository"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileProgress recomputes every enrollment's cached percentage
// against the current catalog. Admin edits to a course's lesson list
// already trigger an eager recompute; this job catches anything that
// slipped through a crashed or racing write.
func reconcileProgress() {
	updated, err := repository.RecomputeAllProgress()
	if err != nil {
		logScheduler("Error reconciling enrollment progress: " + err.Error())
		return
	}
	if updated > 0 {
		logScheduler(fmt.Sprintf("Reconciled %d stale enrollment percentage(s)", updated))
	}
}

// StartProgressScheduler runs the reconciliation job hourly.
func StartProgressScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", reconcileProgress); err != nil {
		log.Fatalf("Failed to schedule progress reconciliation: %v", err)
	}

	c.Start()
	logScheduler("Progress reconciliation scheduled hourly.")
	return c
}
