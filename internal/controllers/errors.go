package controllers

import (
	"errors"
	"fmt"
)

// ErrDuplicateView is returned when a view name is registered twice.
var ErrDuplicateView = errors.New("view already registered")

// UnknownViewError reports navigation to a name that was never registered.
type UnknownViewError struct {
	Name string
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view %q", e.Name)
}
