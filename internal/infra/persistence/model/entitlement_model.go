package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseGrantModel mirrors the 'course_grants' table. The unique index over
// (user_id, course_id) makes repeated purchases of the same course a no-op.
type CourseGrantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_grants_user_course"`
	CourseID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_course_grants_user_course"`
	GrantedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CourseGrantModel) TableName() string {
	return "course_grants"
}
