package service

import (
	"context"
	"fmt"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/storage"

	"github.com/google/uuid"
)

func requireAdmin(authz Authorizer, groupID, userID uuid.UUID) error {
	ok, err := authz.IsAdmin(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check admin role: %w", err)
	}
	if !ok {
		return apperrors.ErrNotGroupAdmin
	}
	return nil
}

func requireAccess(authz Authorizer, groupID, userID uuid.UUID) error {
	ok, err := authz.CanAccess(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check group access: %w", err)
	}
	if !ok {
		return apperrors.ErrNoGroupAccess
	}
	return nil
}

// removeStoredFiles deletes attachment bytes after their rows are gone. Failures only leave orphans.
func removeStoredFiles(ctx context.Context, files storage.FileStore, attachments []models.FileAttachment) {
	if files == nil {
		return
	}
	for _, a := range attachments {
		if err := files.Delete(ctx, a.FileURL); err != nil {
			logger.WithContext(ctx).WithField("attachment_id", a.ID.String()).
				Warnf("Failed to delete stored file: %v", err)
		}
	}
}
