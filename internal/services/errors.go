package services

import (
	"errors"
	"fmt"

	"ukkm-backend/internal/metrics"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("record not found")

	ErrArchiveDisabled = errors.New("report archive is not configured")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// ChangePublisher is told about every successful mutation
type ChangePublisher interface {
	Publish(kind, action string, id int)
}

type discardPublisher struct{}

func (discardPublisher) Publish(string, string, int) {}

func publisherOrDiscard(p ChangePublisher) ChangePublisher {
	if p == nil {
		return discardPublisher{}
	}
	return p
}

// Record kinds and mutation actions as they appear on the change feed
const (
	KindInspection = "inspection"
	KindSample     = "sample"
	KindSeizure    = "seizure"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionFosim   = "fosim_toggled"
)

func recordMutation(pub ChangePublisher, kind, action string, id int) {
	metrics.MutationsTotal.WithLabelValues(kind, action).Inc()
	pub.Publish(kind, action, id)
}
