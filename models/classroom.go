package models

import "time"

// Classroom ist eine Klasse mit Schülerliste.
type Classroom struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `json:"name" gorm:"not null"`
	Grade string `json:"grade,omitempty" gorm:"index"`
	Note  string `json:"note,omitempty" gorm:"type:text"`
}

// TableName gibt explizit den Tabellennamen an.
func (Classroom) TableName() string {
	return "classrooms"
}

// ClassroomStudent ist ein Eintrag der Schülerliste. Number ist die
// laufende Nummer im Klassenbuch.
type ClassroomStudent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClassroomID uint   `json:"classroom_id" gorm:"index;not null"`
	Number      int    `json:"number"`
	Name        string `json:"name" gorm:"not null"`
	Nickname    string `json:"nickname,omitempty"`
}

// TableName gibt explizit den Tabellennamen an.
func (ClassroomStudent) TableName() string {
	return "classroom_students"
}

// Assignment verknüpft ein Topic (und optional einen Practice-Link) mit
// einer Klasse.
type Assignment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClassroomID    uint  `json:"classroom_id" gorm:"index;not null"`
	TopicID        uint  `json:"topic_id" gorm:"index;not null"`
	PracticeLinkID *uint `json:"practice_link_id,omitempty"`

	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	ExerciseType string     `json:"exercise_type" gorm:"default:'practice'"` // practice, game, slides
	DueDate      *time.Time `json:"due_date,omitempty"`
	Active       bool       `json:"active" gorm:"default:true;index"`
}

// TableName gibt explizit den Tabellennamen an.
func (Assignment) TableName() string {
	return "assignments"
}
