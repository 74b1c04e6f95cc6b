package registry

import (
	"fmt"
	"strings"
)

// UnknownModelError is returned when a model name is not registered
type UnknownModelError struct {
	Model     string
	Available []string
}

// Error implements the error interface
func (e *UnknownModelError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown model '%s'; no models are registered", e.Model)
	}
	return fmt.Sprintf("unknown model '%s'. Available: %s", e.Model, strings.Join(e.Available, ", "))
}

// DuplicateModelError is returned when a model name is registered twice
type DuplicateModelError struct {
	Model string
}

// Error implements the error interface
func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("model already registered: %s", e.Model)
}
