package repository

import (
	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriorityRepository handles database operations for priorities
type PriorityRepository struct {
	db *gorm.DB
}

// NewPriorityRepository creates a new priority repository
func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{db: db}
}

// Create creates a new priority
func (r *PriorityRepository) Create(priority *models.Priority) error {
	return r.db.Create(priority).Error
}

// GetByID retrieves a priority by ID
func (r *PriorityRepository) GetByID(id uuid.UUID) (*models.Priority, error) {
	var priority models.Priority
	err := r.db.First(&priority, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &priority, nil
}

// GetAll returns all priorities ordered by weight
func (r *PriorityRepository) GetAll() ([]models.Priority, error) {
	var priorities []models.Priority
	err := r.db.Order("weight ASC").Find(&priorities).Error
	return priorities, err
}
