package tracker

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
)

// Watch streams status snapshots until the context is cancelled.
// The first snapshot is sent immediately; the channel is closed when watching stops.
func (s *service) Watch(ctx context.Context, input *WatchInput) (<-chan *WatchUpdate, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	interval := input.Interval
	if interval <= 0 {
		interval = s.watchInterval
	}

	updates := make(chan *WatchUpdate, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var previous *models.BacStatus
		for {
			status, _, err := s.currentStatus(ctx, input.UserID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Error refreshing status for %s: %v", input.UserID, err)
			} else {
				update := &WatchUpdate{Status: status}
				if s.tierClimbed(previous, status) {
					update.Warning = s.tierWarning(ctx, status)
				}
				previous = status

				select {
				case updates <- update:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// tierClimbed reports a label change while the user is above the warning threshold
func (s *service) tierClimbed(previous, current *models.BacStatus) bool {
	if previous == nil || current == nil {
		return false
	}
	return previous.Message != current.Message && current.CurrentBac > warningThreshold
}

func (s *service) tierWarning(ctx context.Context, status *models.BacStatus) string {
	out, err := s.messaging.GetTierWarningMessage(ctx, &messaging.GetTierWarningMessageInput{
		Tier:  status.Tier,
		Label: status.Message,
	})
	if err != nil {
		log.Printf("Error building tier warning: %v", err)
		return ""
	}
	return out.Message
}
