package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Question is a single entry in a quiz. Question order is significant: the
// position of a question is the index used to match submitted answers.
type Question struct {
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctAnswer"`
}

// QuestionList is stored as a single jsonb column so a quiz keeps its
// questions embedded and ordered, the same shape clients submit.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return fmt.Errorf("unsupported type %T for QuestionList", value)
	}
}

type Quiz struct {
	ID        uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	Title     string       `gorm:"column:title;type:text;not null" json:"title"`
	Questions QuestionList `gorm:"column:questions;type:jsonb;not null" json:"questions"`
	CreatedAt time.Time    `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
