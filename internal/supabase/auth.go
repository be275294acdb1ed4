package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/supabase-community/gotrue-go/types"
	"portfolio-backend/internal/models"
)

// AuthClient wraps the Supabase auth (gotrue) endpoints used by the admin
// dashboard. Each call goes through the client's Auth API directly so no
// session state is shared between requests.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*models.SessionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := a.client.Supabase.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	expiresAt := time.Unix(resp.ExpiresAt, 0).UTC()
	if resp.ExpiresAt == 0 {
		expiresAt = time.Now().UTC().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return &models.SessionResponse{
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
		User: models.UserInfo{
			ID:    resp.User.ID.String(),
			Email: resp.User.Email,
		},
	}, nil
}

// SendPasswordReset asks Supabase to mail a recovery link.
func (a *AuthClient) SendPasswordReset(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.client.Supabase.Auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return fmt.Errorf("failed to send password reset: %w", err)
	}
	return nil
}

func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.client.Supabase.Auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (a *AuthClient) CurrentUser(ctx context.Context, accessToken string) (*models.UserInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := a.client.Supabase.Auth.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &models.UserInfo{ID: resp.ID.String(), Email: resp.Email}, nil
}
