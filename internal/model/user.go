package model

// User represents a registered account. The username doubles as the primary
// key and is what feedback rows reference.
type User struct {
	Username  string `json:"username" gorm:"primaryKey;size:20"`
	Password  string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	Email     string `json:"email" gorm:"uniqueIndex;size:50;not null"`
	FirstName string `json:"first_name" gorm:"size:30;not null"`
	LastName  string `json:"last_name" gorm:"size:30;not null"`

	// Relations
	Feedback []Feedback `json:"feedback,omitempty" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (User) TableName() string {
	return "users"
}
