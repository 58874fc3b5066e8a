package repository

import (
	"context"
	"slices"
	"sync"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
)

// BookingStore is the append-only, process-lifetime booking collection.
// The RWMutex only protects the maps; callers that need read-check-append
// atomicity must hold the slot lock from the unit of work.
type BookingStore struct {
	mu     sync.RWMutex
	bySlot map[booking.SlotKey][]*booking.Booking
	byUser map[string][]*booking.Booking
	byID   map[int64]*booking.Booking
	all    []*booking.Booking
	lastID int64
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bySlot: make(map[booking.SlotKey][]*booking.Booking),
		byUser: make(map[string][]*booking.Booking),
		byID:   make(map[int64]*booking.Booking),
	}
}

func (s *BookingStore) FindByResourceAndDate(ctx context.Context, resourceID int, date booking.Date) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by slot", err, infra.KindCanceled)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bySlot[booking.SlotKey{ResourceID: resourceID, Date: date}]), nil
}

// Append assigns the next id. It is the only mutation the store supports.
func (s *BookingStore) Append(ctx context.Context, resourceID int, userID string, window booking.TimeWindow) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to append booking", err, infra.KindCanceled)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	b := booking.NewBooking(s.lastID, resourceID, userID, window)

	key := b.Key()
	s.bySlot[key] = append(s.bySlot[key], b)
	s.byUser[userID] = append(s.byUser[userID], b)
	s.byID[b.ID()] = b
	s.all = append(s.all, b)

	return b, nil
}

func (s *BookingStore) FindByUser(_ context.Context, userID string) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byUser[userID]), nil
}

func (s *BookingStore) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (s *BookingStore) FindAll(_ context.Context) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.all), nil
}

func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}
