package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrMemberNotFound       = &NotFoundError{Entity: "active group member"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrEventNotFound        = &NotFoundError{Entity: "event"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrAttachmentNotFound   = &NotFoundError{Entity: "attachment"}
)

// Already Exists Errors
var (
	ErrGroupExists  = &AlreadyExistsError{Entity: "group", Context: "with this name"}
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "in this group"}
)

// Authorization Errors
var (
	ErrNotGroupAdmin  = &AuthorizationError{Message: "only group admins can perform this action"}
	ErrNoGroupAccess  = &AuthorizationError{Message: "you do not have access to this group"}
	ErrAttachmentLock = &AuthorizationError{Message: "members can only change attachments before the task deadline"}
)

// Business Logic Errors
var (
	ErrSelfRemoval        = &ValidationError{Field: "member", Message: "you cannot remove yourself from the group, use leave instead"}
	ErrLastAdmin          = &ValidationError{Field: "member", Message: "you are the only admin of this group; assign another admin first"}
	ErrInvalidAssignee    = &ValidationError{Field: "assigned_to", Message: "assignee must be an active member of the group"}
	ErrInvalidPriority    = &ValidationError{Field: "priority_id", Message: "priority does not exist"}
	ErrDeadlineInPast     = &ValidationError{Field: "deadline", Message: "deadline must be in the future"}
	ErrStartInPast        = &ValidationError{Field: "start_time", Message: "start time must be in the future"}
	ErrEndBeforeStart     = &ValidationError{Field: "end_time", Message: "end time must be after start time"}
	ErrInvalidRecurrence  = &ValidationError{Field: "recurrence_rule", Message: "invalid recurrence rule (must follow iCal RRULE format)"}
	ErrInvalidTimeZone    = &ValidationError{Field: "time_zone_id", Message: "invalid time zone"}
	ErrInvalidStatus      = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidRole        = &ValidationError{Field: "role", Message: "invalid role"}
	ErrInvalidTimeRange   = &ValidationError{Field: "range", Message: "invalid time range"}
	ErrNoNotificationIDs  = &ValidationError{Field: "ids", Message: "at least one notification id is required"}
	ErrEmptyUpload        = &ValidationError{Field: "file", Message: "file is empty"}
	ErrPushUnavailable    = errors.New("real-time push is not available")
	ErrStorageUnavailable = errors.New("file storage is not available")
)

// Authentication Errors
var (
	ErrMissingUserContext = &AuthenticationError{Message: "user id not found in context"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
