package domain

import "errors"

var ErrMissingField = errors.New("missing required field")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// User is an account holder. The ID is the Unix-millisecond timestamp of the
// moment the account was created.
//
// Password is stored and compared in plaintext. The persisted users slot keeps
// the credential exactly as entered and login is an exact string match;
// transport-layer responses never serialize this struct directly, so the field
// never leaves the process.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
