package resource

import (
	"errors"
	"strings"
)

var (
	ErrInvalidResourceID   = errors.New("resource id must be positive")
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNonPositiveCapacity = errors.New("resource capacity must be positive")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a bookable room. Immutable once built.
type Resource struct {
	id       int
	name     string
	capacity int
}

func NewResource(id int, name string, capacity int) (*Resource, error) {
	if id <= 0 {
		return nil, ErrInvalidResourceID
	}

	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Resource{
		id:       id,
		name:     strings.TrimSpace(name),
		capacity: capacity,
	}, nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() int       { return r.id }
func (r *Resource) Name() string  { return r.name }
func (r *Resource) Capacity() int { return r.capacity }
