package domain

import "golang.org/x/crypto/bcrypt"

// Authenticator decides whether submitted credentials open a session. It is
// pluggable so a real check can replace the demo one without touching
// navigation logic.
type Authenticator interface {
	Authenticate(creds Credentials) bool
}

// AllowAllAuthenticator accepts any credentials. This is the demo default:
// login always succeeds.
type AllowAllAuthenticator struct{}

func (AllowAllAuthenticator) Authenticate(Credentials) bool {
	return true
}

// StaticAuthenticator checks the submitted password against a single bcrypt
// hash, optionally pinned to one email address.
type StaticAuthenticator struct {
	Email        string
	PasswordHash string
}

func (a StaticAuthenticator) Authenticate(creds Credentials) bool {
	if a.Email != "" && creds.Email != a.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(creds.Password)) == nil
}
