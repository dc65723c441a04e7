package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// PasswordScheme converts a password to its stored form and checks a
// candidate against it.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// NewPasswordScheme returns the scheme registered under name.
//
// "plain" stores passwords verbatim, which is what existing databases
// contain. "bcrypt" is the hardened alternative; switching to it changes the
// stored format, so a database must not mix the two.
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemePlain:
		return plainScheme{}, nil
	case SchemeBcrypt:
		return bcryptScheme{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

type plainScheme struct{}

func (plainScheme) Hash(password string) (string, error) { return password, nil }

func (plainScheme) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type bcryptScheme struct {
	cost int
}

func (s bcryptScheme) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (bcryptScheme) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
