// services/lifecycle.go
package services

import (
	"context"
	"errors"
	"fmt"

	"carlach-backend/models"
	"carlach-backend/storage"
)

// ErrInvalidStatus is returned when a caller supplies a status outside the
// three lifecycle states.
var ErrInvalidStatus = errors.New("invalid status value")

// StatusManager owns the booking status workflow. Transitions are persisted
// first; only a successful persist fires the matching customer notification,
// asynchronously, so delivery can never fail or delay the transition.
//
// The workflow is deliberately unordered: staff may move a booking straight
// from pending to completed or back again. Re-applying the current status
// re-fires its notification; there is no dedup.
type StatusManager struct {
	repo     storage.Repository
	notifier Dispatcher
}

func NewStatusManager(repo storage.Repository, notifier Dispatcher) *StatusManager {
	return &StatusManager{repo: repo, notifier: notifier}
}

// ApplyStatus validates and persists the new status, then dispatches the
// notification the target state calls for. Entering pending is silent.
func (m *StatusManager) ApplyStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := m.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.StatusConfirmed:
		go m.notifier.Notify(NotifyConfirmed, *updated)
	case models.StatusCompleted:
		go m.notifier.Notify(NotifyCompleted, *updated)
	}

	return updated, nil
}
