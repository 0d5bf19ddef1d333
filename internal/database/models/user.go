package models

// User is an account that can own and join groups
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
