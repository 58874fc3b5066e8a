package response

import (
	"room-booking/internal/usecase/queries"
)

type ResourceResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type FreeWindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailabilityResponse struct {
	ResourceID int                  `json:"resourceId"`
	Date       string               `json:"date"`
	Free       []FreeWindowResponse `json:"free"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
	}
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(vs))
	for i, v := range vs {
		out[i] = FromResourceView(v)
	}
	return out
}

// FromAvailabilityView always renders free as a JSON array, never null.
func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	free := make([]FreeWindowResponse, len(v.Free))
	for i, w := range v.Free {
		free[i] = FreeWindowResponse{StartTime: w.StartTime, EndTime: w.EndTime}
	}
	return &AvailabilityResponse{
		ResourceID: v.ResourceID,
		Date:       v.Date,
		Free:       free,
	}
}
