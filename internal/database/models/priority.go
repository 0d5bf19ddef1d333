package models

// Priority ranks tasks; a lower weight sorts first
type Priority struct {
	BaseModel
	Name   string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Weight int    `json:"weight" gorm:"not null;default:0"`
}

// TableName returns the table name for Priority
func (Priority) TableName() string {
	return "priorities"
}
