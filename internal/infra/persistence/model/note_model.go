package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel mirrors the 'notes' table. Every query against it carries the
// owner filter alongside the primary key.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"type:text;not null;default:''"`
	Content   string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
