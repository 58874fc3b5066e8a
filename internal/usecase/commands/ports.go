package commands

import (
	"context"
	"time"

	"room-booking/internal/domain/resource"
	"room-booking/internal/domain/user"
)

type ResourceRepository interface {
	FindByID(ctx context.Context, id int) (*resource.Resource, error)
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username user.Username) (*user.User, error)
}

type TokenIssuer interface {
	GenerateAccessToken(userID string) (string, error)
	TokenDuration() time.Duration
}

// AttemptRecorder observes every booking attempt. kind is "committed" on success,
// otherwise the rejection kind.
type AttemptRecorder interface {
	ObserveAttempt(kind string, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveAttempt(string, time.Duration) {}
