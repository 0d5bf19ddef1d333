package handlers

import (
	"net/http"

	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler handles task file uploads
type AttachmentHandler struct {
	service  service.AttachmentServiceInterface
	maxBytes int64
}

// NewAttachmentHandler creates a new attachment handler. maxBytes caps the request body.
func NewAttachmentHandler(service service.AttachmentServiceInterface, maxBytes int64) *AttachmentHandler {
	return &AttachmentHandler{service: service, maxBytes: maxBytes}
}

// UploadAttachment stores a file against a task
// @Summary Upload attachment
// @Description Members may upload until the task deadline; admins at any time
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Task ID"
// @Param file formData file true "File"
// @Success 201 {object} service.AttachmentResponse
// @Failure 400 {object} ErrorResponse "Missing or empty file"
// @Failure 403 {object} ErrorResponse "No access or deadline passed"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	header, err := c.FormFile("file")
	if err != nil {
		bindError(c, err)
		return
	}
	if header.Size == 0 {
		respondError(c, apperrors.ErrEmptyUpload)
		return
	}

	file, err := header.Open()
	if err != nil {
		bindError(c, err)
		return
	}
	defer file.Close()

	attachment, err := h.service.Upload(c, taskID, userID, header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attachment)
}

// ListAttachments lists a task's attachments
// @Summary List attachments
// @Tags attachments
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {array} service.AttachmentResponse
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	attachments, err := h.service.List(taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachments)
}

// DeleteAttachment removes an attachment and its file
// @Summary Delete attachment
// @Tags attachments
// @Param id path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "No access or deadline passed"
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	if err := h.service.Delete(c, attachmentID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
