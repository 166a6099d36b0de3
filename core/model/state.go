// Package model provides the fitted-state lifecycle and the interfaces
// shared by surrogate models.
package model

import (
	"sync"

	"github.com/polyuq/polyuq/pkg/errors"
)

// FitState tracks whether a model has received coefficients. The zero value
// is unfitted and ready to use. Safe for concurrent readers; fitting and
// evaluation must not be interleaved by the caller.
type FitState struct {
	mu     sync.RWMutex
	fitted bool
}

// IsFitted reports whether the model has been fitted.
func (s *FitState) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as fitted.
func (s *FitState) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset returns the model to the unfitted state.
func (s *FitState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
}

// RequireFitted returns a NotFittedError naming the model and method when
// no coefficients have been set.
func (s *FitState) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
