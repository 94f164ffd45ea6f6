package service

import (
	"context"
	"fmt"

	"offer_letter/internal/repository"
)

// Routes the session gate decides between.
const (
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteSignup   = "/signup"
	RouteHome     = "/home"
	RouteNotFound = "/not-found"
)

// AuthService is the session gate: local credentials plus the current-session marker.
type AuthService struct {
	creds   repository.Credentials
	session repository.Session
	hasher  Hasher
}

func NewAuthService(creds repository.Credentials, session repository.Session, hasher Hasher) *AuthService {
	if hasher == nil {
		hasher = SHA256Hasher{}
	}
	return &AuthService{creds: creds, session: session, hasher: hasher}
}

// SignUp stores a new credential record and opens a session for it.
func (s *AuthService) SignUp(ctx context.Context, username, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	added, err := s.creds.Add(ctx, username, hash)
	if err != nil {
		return fmt.Errorf("sign up %q: %w", username, err)
	}
	if !added {
		return ErrDuplicateUsername
	}
	return s.session.Save(ctx, username)
}

// Login opens a session when the password matches the stored hash.
// Unknown users and wrong passwords are reported the same way.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	u, err := s.creds.Get(ctx, username)
	if err != nil {
		return fmt.Errorf("login %q: %w", username, err)
	}
	if u == nil || !s.hasher.Verify(u.PasswordHash, password) {
		return ErrAuthenticationFailed
	}
	return s.session.Save(ctx, username)
}

func (s *AuthService) CurrentUser(ctx context.Context) (string, bool, error) {
	return s.session.Load(ctx)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// IsAuthenticated reports whether a session marker is present. Storage errors read as false.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.session.Load(ctx)
	return err == nil && ok
}

// Resolve returns where a request for route should land given the session state.
func (s *AuthService) Resolve(ctx context.Context, route string) string {
	switch route {
	case RouteRoot:
		if s.IsAuthenticated(ctx) {
			return RouteHome
		}
		return RouteLogin
	case RouteHome:
		if !s.IsAuthenticated(ctx) {
			return RouteLogin
		}
		return RouteHome
	case RouteLogin, RouteSignup:
		return route
	default:
		return RouteNotFound
	}
}

// RequireSession returns the current user or ErrNotAuthenticated.
func (s *AuthService) RequireSession(ctx context.Context) (string, error) {
	if s.Resolve(ctx, RouteHome) != RouteHome {
		return "", ErrNotAuthenticated
	}
	u, _, err := s.session.Load(ctx)
	if err != nil {
		return "", err
	}
	return u, nil
}
