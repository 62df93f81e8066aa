package model

// Feedback is a note a user leaves on their own board. Rows are removed by
// cascade when the owning user is deleted.
type Feedback struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"size:100;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	Username string `json:"username" gorm:"size:20;not null;index"`
}

// TableName keeps the singular table name from the original schema.
func (Feedback) TableName() string {
	return "feedback"
}
