// Package seed fills an empty database with demo data.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run seeds only when no events exist. It reports whether anything was written.
func Run(ctx context.Context, db *gorm.DB, now time.Time, logger *zap.Logger) (bool, error) {
	existing, err := repository.NewEventRepository(db).FindAll(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: list events: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("seed skipped", zap.Int("events", len(existing)))
		return false, nil
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		regs := repository.NewRegistrationRepository(tx)
		anns := repository.NewAnnouncementRepository(tx)

		hackathon := &models.Event{
			Title:       "Hackathon",
			Description: "A 24-hour coding marathon to build amazing projects.",
			Date:        now.AddDate(0, 0, 14).Truncate(24 * time.Hour).Add(9 * time.Hour),
			Location:    "Tech Hub, Downtown",
		}
		workshop := &models.Event{
			Title:       "AI Workshop",
			Description: "Learn the basics of Generative AI and LLMs.",
			Date:        now.AddDate(0, 0, 21).Truncate(24 * time.Hour).Add(14 * time.Hour),
			Location:    "Virtual (Zoom)",
		}
		for _, e := range []*models.Event{hackathon, workshop} {
			if err := events.Create(ctx, e); err != nil {
				return err
			}
		}

		if err := anns.Create(ctx, &models.Announcement{
			EventID:  &hackathon.ID,
			Title:    "Registration Open",
			Message:  "Registrations for Hackathon are now open! Sign up early.",
			PostedAt: now,
		}); err != nil {
			return err
		}

		for _, r := range []*models.Registration{
			{EventID: hackathon.ID, Name: "John Doe", Email: "john@example.com", Status: models.StatusPending, CreatedAt: now},
			{EventID: hackathon.ID, Name: "Jane Smith", Email: "jane@example.com", Status: models.StatusConfirmed, CreatedAt: now},
		} {
			if err := regs.Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	logger.Info("database seeded", zap.Int("events", 2), zap.Int("registrations", 2), zap.Int("announcements", 1))
	return true, nil
}
