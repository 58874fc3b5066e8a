package user

// User is an account known to the identity provider. Its username doubles as the
// opaque user id handed to the booking core.
type User struct {
	username     Username
	passwordHash string
}

func NewUser(username Username, passwordHash string) *User {
	return &User{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (u *User) ID() string           { return u.username.Value() }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
