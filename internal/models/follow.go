package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrSelfFollow is returned when a follow edge would point at its own follower.
var ErrSelfFollow = errors.New("user cannot follow themselves")

// Follow is a directed subscription edge: UserID follows AuthorID.
// The (user, author) pair is unique, so concurrent duplicate creates collapse
// into a single surviving edge.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	AuthorID  uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate rejects self-edges at the store level, so direct writes cannot
// bypass the handler guard.
func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.UserID == f.AuthorID {
		return ErrSelfFollow
	}
	return nil
}
