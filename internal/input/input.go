// Package input validates raw text collected by the presentation layer
// before it reaches the manager.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidPriority  = errors.New("priority must be an integer")
	ErrInvalidID        = errors.New("task id must be a positive integer")
)

// Description trims v and rejects blank text.
func Description(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrEmptyDescription
	}
	return v, nil
}

func Priority(v string) (int, error) {
	v = strings.TrimSpace(v)
	p, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, v)
	}
	return p, nil
}

func ID(v string) (int, error) {
	v = strings.TrimSpace(v)
	id, err := strconv.Atoi(v)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, v)
	}
	return id, nil
}
