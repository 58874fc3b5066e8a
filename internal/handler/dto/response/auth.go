package response

import "room-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user"`
}
