package readstore

import (
	"context"
	"slices"

	"room-booking/internal/domain/resource"
	"room-booking/internal/infra"
)

// ResourceReadStore is the static resource registry. Its contents never change after construction.
type ResourceReadStore struct {
	byID  map[int]*resource.Resource
	order []*resource.Resource
}

func NewResourceReadStore(resources []*resource.Resource) *ResourceReadStore {
	byID := make(map[int]*resource.Resource, len(resources))
	order := make([]*resource.Resource, 0, len(resources))
	for _, r := range resources {
		if _, dup := byID[r.ID()]; dup {
			continue
		}
		byID[r.ID()] = r
		order = append(order, r)
	}
	slices.SortFunc(order, func(a, b *resource.Resource) int { return a.ID() - b.ID() })

	return &ResourceReadStore{
		byID:  byID,
		order: order,
	}
}

func (r *ResourceReadStore) FindAll(_ context.Context) ([]*resource.Resource, error) {
	return slices.Clone(r.order), nil
}

func (r *ResourceReadStore) FindByID(_ context.Context, id int) (*resource.Resource, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return res, nil
}

// DefaultResources is the catalog the service ships with.
func DefaultResources() []*resource.Resource {
	seed := []struct {
		id       int
		name     string
		capacity int
	}{
		{1, "Breakout Room A", 4},
		{2, "Breakout Room B", 6},
		{3, "Breakout Room C", 8},
	}

	out := make([]*resource.Resource, 0, len(seed))
	for _, s := range seed {
		r, err := resource.NewResource(s.id, s.name, s.capacity)
		if err != nil {
			panic(err)
		}
		out = append(out, r)
	}
	return out
}
