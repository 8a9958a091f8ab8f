package entities

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VersionID   uuid.UUID `gorm:"type:uuid" json:"version_id"`
	UserID      uuid.UUID `gorm:"type:uuid" json:"user_id"`
	CommentText string    `json:"comment_text"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Version *Version `gorm:"foreignKey:VersionID" json:"-"`
}
