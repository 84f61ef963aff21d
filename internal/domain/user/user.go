package user

import (
	"errors"
	"time"
)

// GuestName is the identity quizzes run under without a login. Guest play
// produces results but is never persisted.
const GuestName = "Guest"

// User is a registered player. PasswordHash is a bcrypt hash; the plain
// password never leaves the auth service.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateCredentials checks signup constraints.
func ValidateCredentials(username, password string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}
