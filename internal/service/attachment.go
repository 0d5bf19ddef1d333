package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/repository"
	"team-planner-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentService handles files attached to tasks
type AttachmentService struct {
	repo     repository.AttachmentRepositoryInterface
	taskRepo repository.TaskRepositoryInterface
	authz    Authorizer
	files    storage.FileStore
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(repo repository.AttachmentRepositoryInterface, taskRepo repository.TaskRepositoryInterface, authz Authorizer, files storage.FileStore) *AttachmentService {
	return &AttachmentService{
		repo:     repo,
		taskRepo: taskRepo,
		authz:    authz,
		files:    files,
	}
}

// AttachmentResponse represents a stored attachment
type AttachmentResponse struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	UserID     uuid.UUID `json:"user_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Upload stores a file against a task. Admins may always upload; members only
// while the task has a deadline that has not passed.
func (s *AttachmentService) Upload(ctx context.Context, taskID, actorID uuid.UUID, fileName string, content io.Reader) (*AttachmentResponse, error) {
	if s.files == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.requireWritable(task, actorID, time.Now().UTC()); err != nil {
		return nil, err
	}

	name := storage.SanitizeFileName(fileName)
	url, err := s.files.Save(ctx, name, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	attachment := &models.FileAttachment{
		FileName:   name,
		FileURL:    url,
		EntityType: models.EntityTypeTask,
		EntityID:   taskID,
		UserID:     actorID,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(attachment); err != nil {
		if delErr := s.files.Delete(ctx, url); delErr != nil {
			logger.WithContext(ctx).Warnf("Failed to remove orphaned upload %s: %v", url, delErr)
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	return toAttachmentResponse(attachment), nil
}

// List returns the attachments of a task the caller can access
func (s *AttachmentService) List(taskID, actorID uuid.UUID) ([]AttachmentResponse, error) {
	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.authz, task.GroupID, actorID); err != nil {
		return nil, err
	}

	attachments, err := s.repo.ListByEntity(models.EntityTypeTask, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	responses := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		responses[i] = *toAttachmentResponse(&attachments[i])
	}
	return responses, nil
}

// Delete removes the metadata row and then the stored bytes, under the same rule as Upload
func (s *AttachmentService) Delete(ctx context.Context, attachmentID, actorID uuid.UUID) error {
	attachment, err := s.repo.GetByID(attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	task, err := s.getTask(attachment.EntityID)
	if err != nil {
		return err
	}
	if err := s.requireWritable(task, actorID, time.Now().UTC()); err != nil {
		return err
	}

	if err := s.repo.Delete(attachmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	removeStoredFiles(ctx, s.files, []models.FileAttachment{*attachment})
	return nil
}

// requireWritable fails closed for members when the task has no deadline
func (s *AttachmentService) requireWritable(task *models.TaskItem, actorID uuid.UUID, now time.Time) error {
	if err := requireAccess(s.authz, task.GroupID, actorID); err != nil {
		return err
	}

	isAdmin, err := s.authz.IsAdmin(task.GroupID, actorID)
	if err != nil {
		return fmt.Errorf("failed to check admin role: %w", err)
	}
	if isAdmin {
		return nil
	}

	if task.Deadline == nil || !task.Deadline.After(now) {
		return apperrors.ErrAttachmentLock
	}
	return nil
}

func (s *AttachmentService) getTask(taskID uuid.UUID) (*models.TaskItem, error) {
	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func toAttachmentResponse(a *models.FileAttachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:         a.ID,
		FileName:   a.FileName,
		FileURL:    a.FileURL,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		UserID:     a.UserID,
		UploadedAt: a.UploadedAt,
	}
}
