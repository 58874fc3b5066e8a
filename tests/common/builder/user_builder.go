//go:build unit

package builder

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/usecase/queries"
)

type UserBuilder struct {
	Username     string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "alice",
		PasswordHash: "hashed_password",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, u.PasswordHash), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.Username,
		Username: u.Username,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
