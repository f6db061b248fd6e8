package models

import "time"

// PracticeItem ist eine MCQ des Übungsblatts eines Topics. Position hält
// die Reihenfolge; Choices sind ein JSON-Array mit exakt vier Strings.
type PracticeItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TopicID  uint `json:"topic_id" gorm:"index:idx_practice_pos,unique;not null"`
	Position int  `json:"position" gorm:"index:idx_practice_pos,unique;not null"`

	Question     string `json:"question" gorm:"type:text;not null"`
	ChoicesJSON  []byte `json:"choices" gorm:"type:jsonb"`
	CorrectIndex int    `json:"correct_index" gorm:"default:0"` // 0-3
	Explain      string `json:"explain,omitempty" gorm:"type:text"`
}

// TableName gibt explizit den Tabellennamen an.
func (PracticeItem) TableName() string {
	return "practice_items"
}

// PracticeLink ist ein öffentlicher Share-Token für das Übungsblatt eines
// Topics. Abgelaufene Links werden per Cron deaktiviert, nicht gelöscht.
type PracticeLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TopicID   uint       `json:"topic_id" gorm:"index;not null"`
	Token     string     `json:"token" gorm:"uniqueIndex;size:64;not null"`
	Active    bool       `json:"active" gorm:"default:true;index"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TableName gibt explizit den Tabellennamen an.
func (PracticeLink) TableName() string {
	return "practice_links"
}

// PracticeSubmission ist eine eingereichte Schüler-Antwort auf ein
// Übungsblatt, entweder direkt oder über einen öffentlichen Link.
type PracticeSubmission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	TopicID     uint   `json:"topic_id" gorm:"index;not null"`
	LinkID      *uint  `json:"link_id,omitempty" gorm:"index"`
	StudentName string `json:"student_name" gorm:"not null"`

	Score       int    `json:"score"`
	Total       int    `json:"total"`
	AnswersJSON []byte `json:"answers" gorm:"type:jsonb"`
}

// TableName gibt explizit den Tabellennamen an.
func (PracticeSubmission) TableName() string {
	return "practice_submissions"
}
