// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	AccessToken  string
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout by invalidating the refresh token and
// revoking the access token so it cannot be replayed until its expiry.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Ignore errors as the tokens might already be invalid
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
	if input.AccessToken != "" {
		_ = uc.tokenService.RevokeAccessToken(ctx, input.AccessToken)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
