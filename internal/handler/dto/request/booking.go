package request

// CreateBookingRequest keeps date and times as raw strings; parsing belongs to the validator.
type CreateBookingRequest struct {
	ResourceID int    `json:"resource_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}
