package queries

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// BookingView carries the resource name so callers never need a second lookup.
type BookingView struct {
	ID           int64  `json:"id"`
	ResourceID   int    `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	UserID       string `json:"user_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type FreeWindowView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityView struct {
	ResourceID int              `json:"resource_id"`
	Date       string           `json:"date"`
	Free       []FreeWindowView `json:"free"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
