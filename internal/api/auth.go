package api

import (
	"context"
	"net/http"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// Login authenticates against POST /loginUser. On success the server's
// session_id cookie lands in the jar and is persisted through the session
// store; every subsequent request carries it.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.Status, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.Status
	if err := c.do(ctx, "login", http.MethodPost, "loginUser", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account via POST /registerUser
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.Status, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.Status
	if err := c.do(ctx, "register", http.MethodPost, "registerUser", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the session via POST /logout and drops the local credential
// regardless of the server's answer: a failed logout call must not leave a
// client that believes it is still signed in.
func (c *Client) Logout(ctx context.Context) (*types.Status, error) {
	var out types.Status
	err := c.do(ctx, "logout", http.MethodPost, "logout", nil, nil, &out)
	if clearErr := c.jar.ClearSession(c.Host()); clearErr != nil && err == nil {
		err = clearErr
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword requests a password reset email via POST /reset-password
func (c *Client) ResetPassword(ctx context.Context, email string) (*types.Status, error) {
	var out types.Status
	body := map[string]string{"email": email}
	if err := c.do(ctx, "reset_password", http.MethodPost, "reset-password", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserInfo fetches the signed-in account via GET /getUserInfo
func (c *Client) UserInfo(ctx context.Context) (*types.UserInfo, error) {
	var out types.UserInfo
	if err := c.do(ctx, "user_info", http.MethodGet, "getUserInfo", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ServerStatus pings GET /
func (c *Client) ServerStatus(ctx context.Context) (*types.Status, error) {
	var out types.Status
	if err := c.do(ctx, "server_status", http.MethodGet, "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserPatientProfile fetches GET /api/user/patient-profile
func (c *Client) UserPatientProfile(ctx context.Context) (*types.PatientProfile, error) {
	var out types.PatientProfile
	if err := c.do(ctx, "user_patient_profile", http.MethodGet, "api/user/patient-profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StatusCallback receives the result of an asynchronous auth call
type StatusCallback func(*types.Status, error)

// UserInfoCallback receives the result of an asynchronous user-info call
type UserInfoCallback func(*types.UserInfo, error)

// The auth endpoints historically used a callback convention while the
// resource endpoints were rewritten to the blocking style. The bridges
// below keep that convention available at the UI boundary; the context
// methods above remain the primary interface.

// LoginAsync runs Login on its own goroutine and delivers to cb
func (c *Client) LoginAsync(ctx context.Context, req *types.LoginRequest, cb StatusCallback) {
	go func() { cb(c.Login(ctx, req)) }()
}

// RegisterAsync runs Register on its own goroutine and delivers to cb
func (c *Client) RegisterAsync(ctx context.Context, req *types.RegisterRequest, cb StatusCallback) {
	go func() { cb(c.Register(ctx, req)) }()
}

// LogoutAsync runs Logout on its own goroutine and delivers to cb
func (c *Client) LogoutAsync(ctx context.Context, cb StatusCallback) {
	go func() { cb(c.Logout(ctx)) }()
}

// ResetPasswordAsync runs ResetPassword on its own goroutine and delivers to cb
func (c *Client) ResetPasswordAsync(ctx context.Context, email string, cb StatusCallback) {
	go func() { cb(c.ResetPassword(ctx, email)) }()
}

// UserInfoAsync runs UserInfo on its own goroutine and delivers to cb
func (c *Client) UserInfoAsync(ctx context.Context, cb UserInfoCallback) {
	go func() { cb(c.UserInfo(ctx)) }()
}
