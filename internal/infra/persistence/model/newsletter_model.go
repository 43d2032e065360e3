package model

import "time"

// NewsletterModel mirrors the 'newsletter' table.
type NewsletterModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterModel) TableName() string {
	return "newsletter"
}
