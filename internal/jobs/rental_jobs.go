package jobs

import (
	"context"
	"time"

	"wardrobe-rental-backend/internal/logger"
)

// SendDueRentalReminders emails the staff a digest of rentals whose end date
// has arrived and that are still out (active or ready).
func (jr *JobRunner) SendDueRentalReminders() {
	jr.runWithRecovery("SendDueRentalReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
		rentals, err := jr.store.ListDue(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to load due rentals", "error", err)
			return
		}

		if len(rentals) == 0 {
			logger.Info("No due rentals, skipping digest")
			return
		}

		recipient := jr.config.Email.StaffDigestEmail
		if recipient == "" {
			logger.Warn("Staff digest email not configured, skipping digest", "due_count", len(rentals))
			return
		}

		if err := jr.services.Email.SendDueRentalsDigest(ctx, recipient, rentals); err != nil {
			logger.Error("Failed to send due rentals digest", "error", err, "recipient", recipient)
			return
		}

		logger.Info("Sent due rentals digest", "recipient", recipient, "due_count", len(rentals))
	})
}
