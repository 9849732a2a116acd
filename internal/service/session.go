package service

import (
	"context"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

// requireAdmin fails unless ctx carries a verified admin session.
func requireAdmin(ctx context.Context) error {
	session, ok := utils.GetSessionFromContext(ctx)
	if !ok || !session.IsAdmin() {
		return ErrAdminSessionRequired
	}
	return nil
}
