package models

import "time"

// Topic repräsentiert ein Unterrichtsthema mit generiertem Slide-Deck.
// Slides liegen als normalisiertes JSON in SlidesJSON; Game-Tiles und
// Practice-Fragen sind als eigene Zeilen modelliert (editierbar pro Eintrag).
type Topic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `json:"name" gorm:"not null;index"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// Generierungs-Parameter
	Level     string `json:"level" gorm:"default:'Secondary'"`
	Language  string `json:"language" gorm:"default:'EN'"` // EN, EN+TH, TH
	Style     string `json:"style" gorm:"default:'Detailed'"`
	TopicType string `json:"topic_type,omitempty" gorm:"index"`

	// Normalisiertes Slide-Deck als JSON-Array
	SlidesJSON []byte `json:"-" gorm:"type:jsonb"`

	// True, wenn das aktuelle Bundle aus dem Fallback stammt
	FallbackUsed bool `json:"fallback_used" gorm:"default:false"`
}

// TableName gibt explizit den Tabellennamen an.
func (Topic) TableName() string {
	return "topics"
}
