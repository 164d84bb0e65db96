package services

import (
	"fmt"

	"taskmaster/model"
)

// Lifecycle decides which status changes and time log events are accepted.
// The permissive policy stores whatever valid value a caller sends; the
// strict policy also requires a legal move from the current state.
type Lifecycle struct {
	Strict bool
}

func (l Lifecycle) CheckTask(from, to model.TaskStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if l.Strict && !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: task cannot move from %s to %s", ErrIllegalTransition, from, to)
	}
	return nil
}

func (l Lifecycle) CheckTimeLog(current model.WorkStatus, next model.TimeLogType) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLogType, next)
	}
	if l.Strict && !current.Allows(next) {
		return fmt.Errorf("%w: %s not allowed while %s", ErrIllegalTransition, next, current)
	}
	return nil
}
