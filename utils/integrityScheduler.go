package utils

import (
	"context"
	"time"

	"prepcourse/services"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

var schedulerLog = log.WithPrefix("INTEGRITY-SCHEDULER")

// StartIntegrityScheduler runs the orphan scan on the given cron spec.
// An empty spec disables the scheduler and returns a nil cron.
func StartIntegrityScheduler(spec string, svc *services.Service) (*cron.Cron, error) {
	if spec == "" {
		schedulerLog.Info("Integrity scheduler disabled")
		return nil, nil
	}

	c := cron.New(cron.WithLocation(svc.Location()))
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		RunIntegrityCheck(ctx, svc)
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid integrity cron %q", spec)
	}

	c.Start()
	schedulerLog.Info("Integrity scheduler started", "spec", spec)
	return c, nil
}

// RunIntegrityCheck performs one scan and logs what it found.
func RunIntegrityCheck(ctx context.Context, svc *services.Service) *services.IntegrityReport {
	report, err := svc.IntegrityReport(ctx)
	if err != nil {
		schedulerLog.Error("Integrity check failed", "err", err)
		return nil
	}
	if report.Total() == 0 {
		schedulerLog.Info("No orphaned records")
		return report
	}
	schedulerLog.Warn("Orphaned records found",
		"subjects", len(report.OrphanSubjects),
		"topics", len(report.OrphanTopics),
		"questions", len(report.OrphanQuestions),
	)
	return report
}
