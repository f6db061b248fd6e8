package models

import "time"

// LibrarySubject ist eine Fach-Kategorie der geteilten Unterrichts-Bibliothek,
// z.B. "English M1". Statt zu löschen wird über Active deaktiviert, damit
// geklonte Topics ihre Herkunft behalten.
type LibrarySubject struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `json:"name" gorm:"not null;index"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	GradeLevel  string `json:"grade_level,omitempty"`
	SubjectType string `json:"subject_type" gorm:"default:'english'"`

	// Darstellung im Browse-Grid
	Icon  string `json:"icon" gorm:"default:'📚'"`
	Color string `json:"color" gorm:"default:'#667eea'"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	Active    bool `json:"active" gorm:"default:true;index"`
}

// TableName gibt explizit den Tabellennamen an.
func (LibrarySubject) TableName() string {
	return "library_subjects"
}

// LibraryUnit ist eine fertige Unterrichtseinheit der Bibliothek. Die Inhalte
// liegen als Bundle-JSON-Blobs am Unit und werden beim Klonen durch den
// Normalizer in ein eigenes Topic überführt.
type LibraryUnit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SubjectID   uint   `json:"subject_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	UnitNumber  int    `json:"unit_number" gorm:"default:0"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Tags        string `json:"tags,omitempty"` // kommasepariert, für die Suche

	// Bundle-Inhalte als JSON
	SlidesJSON   []byte `json:"-" gorm:"type:jsonb"`
	GameJSON     []byte `json:"-" gorm:"type:jsonb"`
	PracticeJSON []byte `json:"-" gorm:"type:jsonb"`

	Free          bool `json:"free" gorm:"default:false"`
	EstimatedTime int  `json:"estimated_time" gorm:"default:60"` // Minuten
	PreviewSlides int  `json:"preview_slides" gorm:"default:3"`

	// Nutzungs-Zähler
	ViewCount   int `json:"view_count" gorm:"default:0"`
	CloneCount  int `json:"clone_count" gorm:"default:0"`
	RatingSum   int `json:"-" gorm:"default:0"`
	RatingCount int `json:"rating_count" gorm:"default:0"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	Active    bool `json:"active" gorm:"default:true;index"`
}

// TableName gibt explizit den Tabellennamen an.
func (LibraryUnit) TableName() string {
	return "library_units"
}

// AvgRating liefert die auf eine Nachkommastelle gerundete Durchschnitts-
// Bewertung, 0 ohne Bewertungen.
func (u *LibraryUnit) AvgRating() float64 {
	if u.RatingCount == 0 {
		return 0
	}
	avg := float64(u.RatingSum) / float64(u.RatingCount)
	return float64(int(avg*10+0.5)) / 10
}

// LibraryRating ist eine einzelne Bewertung (1-5) eines Units. Die Aggregate
// RatingSum/RatingCount am Unit werden beim Schreiben mitgepflegt.
type LibraryRating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UnitID uint   `json:"unit_id" gorm:"index;not null"`
	Rating int    `json:"rating" gorm:"not null"` // 1-5
	Review string `json:"review,omitempty" gorm:"type:text"`
}

// TableName gibt explizit den Tabellennamen an.
func (LibraryRating) TableName() string {
	return "library_ratings"
}

// LibraryClone protokolliert, welches Topic aus welchem Unit geklont wurde.
type LibraryClone struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UnitID  uint `json:"unit_id" gorm:"index;not null"`
	TopicID uint `json:"topic_id" gorm:"index;not null"`
}

// TableName gibt explizit den Tabellennamen an.
func (LibraryClone) TableName() string {
	return "library_clones"
}
