package fsdk

import (
	"context"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

const (
	loginPath          = "/api/auth/login"
	registerPath       = "/api/auth/register"
	refreshPath        = "/api/auth/refresh"
	logoutPath         = "/api/auth/logout"
	mePath             = "/api/auth/me"
	changePasswordPath = "/api/auth/change-password"
)

// LoginRequest carries credential login input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account. CompanyName seeds the business
// profile the dashboard reports on.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login exchanges credentials for a token pair and stores it. Auth
// endpoints run outside the bearer/refresh machinery: a 401 here means
// bad credentials, not a stale session.
func (s *Sdk) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	if err := validateRequired("email", email); err != nil {
		return nil, err
	}
	if err := validateEmail("email", email); err != nil {
		return nil, err
	}
	if err := validateRequired("password", password); err != nil {
		return nil, err
	}
	ctx = context.WithValue(ctx, skipAuthKey{}, true)
	var pair TokenPair
	if err := s.post(ctx, loginPath, LoginRequest{Email: email, Password: password}, &pair); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, ferr.New(ferr.CodeUnknown, err)
	}
	return &pair, nil
}

func (r RegisterRequest) validate() error {
	if err := validateRequired("email", r.Email); err != nil {
		return err
	}
	if err := validateEmail("email", r.Email); err != nil {
		return err
	}
	if err := validatePassword("password", r.Password); err != nil {
		return err
	}
	return validateRequired("full_name", r.FullName)
}

// Register creates an account and stores the returned token pair, so a
// fresh registration is immediately signed in.
func (s *Sdk) Register(ctx context.Context, req RegisterRequest) (*TokenPair, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	ctx = context.WithValue(ctx, skipAuthKey{}, true)
	var pair TokenPair
	if err := s.post(ctx, registerPath, req, &pair); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, ferr.New(ferr.CodeUnknown, err)
	}
	return &pair, nil
}

// Logout revokes the refresh token server-side when possible and always
// clears the local session. Server unavailability never blocks logout.
func (s *Sdk) Logout(ctx context.Context) error {
	_, refresh := s.currentTokens()
	if refresh != "" {
		_ = s.post(ctx, logoutPath, logoutRequest{RefreshToken: refresh}, nil)
	}
	s.clearSession(ctx)
	return nil
}

// ChangePassword rotates the account password. The backend revokes
// other sessions; the current pair stays valid.
func (s *Sdk) ChangePassword(ctx context.Context, current, updated string) error {
	if err := validateRequired("current_password", current); err != nil {
		return err
	}
	if err := validatePassword("new_password", updated); err != nil {
		return err
	}
	return s.post(ctx, changePasswordPath, changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     updated,
	}, nil)
}
