package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"webshop/internal/auth"
	"webshop/internal/domain"
	"webshop/internal/repos"
)

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration // zero means auth.TokenTTL
}

func (s *AuthService) ttl() time.Duration {
	if s.TTL != 0 {
		return s.TTL
	}
	return auth.TokenTTL
}

// Register creates a user with a bcrypt-hashed password and mints a token.
// The returned user never carries the hash.
func (s *AuthService) Register(username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	id, err := s.Users.Create(username, string(hash))
	if err != nil {
		return "", nil, err
	}
	tok, err := auth.Mint(username, id, s.Secret, s.ttl())
	if err != nil {
		return "", nil, err
	}
	return tok, &domain.User{ID: id, Username: username}, nil
}

// Login mints a fresh token for valid credentials. Unknown username and wrong
// password both come back as ErrBadCreds; callers must not learn which.
// Storage failures propagate as-is so they surface as 500, not 401.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.Users.ByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrBadCreds
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", domain.ErrBadCreds
	}
	return auth.Mint(u.Username, u.ID, s.Secret, s.ttl())
}

// VerifyBearer parses an Authorization header of the exact form "Bearer <token>"
// and returns the decoded claims.
func (s *AuthService) VerifyBearer(header string) (*auth.Claims, error) {
	if header == "" {
		return nil, domain.ErrMissingAuth
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return nil, domain.ErrMalformedAuth
	}
	return auth.Verify(token, s.Secret)
}
