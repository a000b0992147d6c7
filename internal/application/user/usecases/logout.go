package usecases

import (
	"context"
	"fmt"

	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

type LogoutUseCase struct {
	logger logger.Interface
}

func NewLogoutUseCase(logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{logger: logger}
}

// Execute forgets the session and returns where to navigate. The backend
// is not told; the token simply stops being sent.
func (uc *LogoutUseCase) Execute(ctx context.Context, h *session.Holder) (string, error) {
	if err := h.Clear(ctx); err != nil {
		uc.logger.Errorw("failed to clear session", "error", err, "session_key", h.Key())
		return "", fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully", "session_key", h.Key())

	return authorization.RouteLogin, nil
}
