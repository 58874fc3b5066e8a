package commands

import (
	"context"
	"time"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      string
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthCommands(users UserRepository, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		users:  users,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Malformed usernames and short passwords cannot belong to a seeded account.
		return nil, errs.Wrap(ErrInvalidCredentials, err.Error())
	}

	u, err := a.users.FindByUsername(ctx, credentials.Username())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateAccessToken(u.ID())
	if err != nil {
		return nil, errs.Wrap(ErrTokenGeneration, err.Error())
	}

	return &LoginResult{
		UserID:      u.ID(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}
