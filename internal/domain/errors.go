package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrHeroNotFound      = errors.New("superhero not found")
	ErrInvalidComparison = errors.New("invalid comparison")
	ErrDuplicateHeroID   = errors.New("duplicate hero id")
	ErrMissingHeroID     = errors.New("hero id is required")
)

type ValidationReason int

const (
	ReasonMissingIdentifier ValidationReason = iota + 1
	ReasonDuplicateIdentifier
)

func (r ValidationReason) String() string {
	switch r {
	case ReasonMissingIdentifier:
		return "both identifiers required"
	case ReasonDuplicateIdentifier:
		return "identifiers must differ"
	}
	return "invalid identifiers"
}

// ValidationError rejects a comparison request before any lookup happens.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return e.Reason.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidComparison
}

// Side identifies an argument position in a comparison request.
type Side string

const (
	SideA Side = "id1"
	SideB Side = "id2"
)

type MissingHero struct {
	Side Side
	ID   HeroID
}

// NotFoundError lists every side of a comparison that did not resolve.
type NotFoundError struct {
	Missing []MissingHero
}

func (e *NotFoundError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = fmt.Sprintf("%s=%s", m.Side, m.ID)
	}
	return fmt.Sprintf("%v: %s", ErrHeroNotFound, strings.Join(parts, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrHeroNotFound
}
