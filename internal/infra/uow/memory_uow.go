package uow

import (
	"context"
	"sync"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

// MemoryUoW serializes work per SlotKey. Different keys never wait on each other.
type MemoryUoW struct {
	store *repository.BookingStore

	mu    sync.Mutex
	locks map[booking.SlotKey]*slotLock
}

type slotLock struct {
	held chan struct{}
	refs int // holders plus waiters; the entry is dropped at zero
}

func NewMemoryUoW(store *repository.BookingStore) shared.UnitOfWork {
	return &MemoryUoW{
		store: store,
		locks: make(map[booking.SlotKey]*slotLock),
	}
}

func (u *MemoryUoW) WithinSlot(ctx context.Context, key booking.SlotKey, fn func(ctx context.Context, tx shared.Tx) error) error {
	release, err := u.acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx, &memTx{store: u.store})
}

func (u *MemoryUoW) acquire(ctx context.Context, key booking.SlotKey) (func(), error) {
	u.mu.Lock()
	l, ok := u.locks[key]
	if !ok {
		l = &slotLock{held: make(chan struct{}, 1)}
		u.locks[key] = l
	}
	l.refs++
	u.mu.Unlock()

	select {
	case l.held <- struct{}{}:
		return func() {
			<-l.held
			u.unref(key, l)
		}, nil
	case <-ctx.Done():
		u.unref(key, l)
		return nil, errs.Mark(ctx.Err(), shared.ErrSlotLockAborted)
	}
}

func (u *MemoryUoW) unref(key booking.SlotKey, l *slotLock) {
	u.mu.Lock()
	defer u.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(u.locks, key)
	}
}

type memTx struct {
	store *repository.BookingStore
}

func (t *memTx) Bookings() shared.BookingRepository {
	return t.store
}
