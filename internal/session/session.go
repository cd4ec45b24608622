package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dojodoskages/storefront/internal/hash"
)

const TokenTTL = 12 * time.Hour

// Store holds the single shared admin session: one authenticated flag,
// no per-user identity. Login issues a signed token for the HTTP gate,
// but a token is only honored while the flag is set, so Logout
// invalidates every outstanding token at once.
type Store struct {
	mu            sync.Mutex
	authenticated bool

	passwordHash string
	jwtSecret    []byte
}

func NewStore(passwordHash string, jwtSecret []byte) *Store {
	return &Store{passwordHash: passwordHash, jwtSecret: jwtSecret}
}

// Login compares the passphrase against the configured bcrypt hash. On
// match it sets the flag and returns a signed token; on mismatch the
// state is left unchanged.
func (s *Store) Login(password string) (string, bool) {
	if !hash.CheckPassword(s.passwordHash, password) {
		return "", false
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", false
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	return token, true
}

// Logout unconditionally drops the session.
func (s *Store) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Verify reports whether the token is validly signed, unexpired, carries
// the admin role, and the session is still open.
func (s *Store) Verify(raw string) bool {
	if !s.Authenticated() {
		return false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
