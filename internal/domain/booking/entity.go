package booking

// SlotKey groups bookings that must not overlap.
type SlotKey struct {
	ResourceID int
	Date       Date
}

// Booking is a committed reservation. It is never mutated after creation.
type Booking struct {
	id         int64
	resourceID int
	userID     string
	window     TimeWindow
}

func NewBooking(id int64, resourceID int, userID string, window TimeWindow) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		window:     window,
	}
}

func (b *Booking) ID() int64          { return b.id }
func (b *Booking) ResourceID() int    { return b.resourceID }
func (b *Booking) UserID() string     { return b.userID }
func (b *Booking) Window() TimeWindow { return b.window }

func (b *Booking) Key() SlotKey {
	return SlotKey{ResourceID: b.resourceID, Date: b.window.date}
}

// Windows projects bookings onto their windows, preserving order.
func Windows(bookings []*Booking) []TimeWindow {
	out := make([]TimeWindow, len(bookings))
	for i, b := range bookings {
		out[i] = b.window
	}
	return out
}
