package auth

import (
	"errors"

	"github.com/ubermelon/shop-backend/internal/customer"
	"github.com/ubermelon/shop-backend/internal/session"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoSuchCustomer = errors.New("no customer with that email")
	ErrBadCredentials = errors.New("incorrect password")
	ErrNotLoggedIn    = errors.New("not logged in")
)

// Service is the auth gate: it moves a session between anonymous and
// logged-in against the identity snapshot it was constructed with.
type Service struct {
	customers customer.Repository
}

func NewService(customers customer.Repository) *Service {
	return &Service{customers: customers}
}

// Login checks the credentials and records the email on the session,
// overwriting any prior login. Email existence is checked before the
// password, so a nonexistent email always yields ErrNoSuchCustomer. The cart
// is not touched; it belongs to the session, not the login.
func (s *Service) Login(sess *session.Session, email, password string) error {
	if !s.customers.Exists(email) {
		return ErrNoSuchCustomer
	}

	cust, err := s.customers.GetByEmail(email)
	if err != nil {
		return ErrNoSuchCustomer
	}
	if !passwordMatches(cust.Password, password) {
		return ErrBadCredentials
	}

	sess.LoggedInEmail = email
	return nil
}

// Logout clears the login state. Logging out an anonymous session is an
// error, not a no-op.
func (s *Service) Logout(sess *session.Session) error {
	if sess.LoggedInEmail == "" {
		return ErrNotLoggedIn
	}
	sess.LoggedInEmail = ""
	return nil
}

// passwordMatches compares the entered password against the stored one.
// Stored values that look like bcrypt hashes are verified with bcrypt so
// hashed records can coexist with legacy plaintext ones, which keep exact
// string comparison.
func passwordMatches(stored, entered string) bool {
	if looksLikeBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(entered)) == nil
	}
	return stored == entered
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
