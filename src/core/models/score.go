package models

import (
	"time"

	"github.com/google/uuid"
)

// Score records the outcome of one quiz attempt. Rows are append-only and
// repeated attempts by the same user on the same quiz each get their own row.
type Score struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	QuizID    uuid.UUID `gorm:"column:quiz_id;type:uuid;not null;index" json:"quiz_id"`
	Value     int       `gorm:"column:value;type:int;not null" json:"score"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Score) TableName() string {
	return "scores"
}
