package models

import "time"

// GameQuestion ist eine Frage/Antwort-Kachel eines Game-Sets. Pro Topic gibt
// es drei Sets zu je 24 Kacheln; (TopicID, SetNo, TileNo) ist eindeutig.
type GameQuestion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TopicID uint `json:"topic_id" gorm:"index:idx_game_tile,unique;not null"`
	SetNo   int  `json:"set_no" gorm:"index:idx_game_tile,unique;not null"`
	TileNo  int  `json:"tile_no" gorm:"index:idx_game_tile,unique;not null"`

	Question string `json:"question" gorm:"type:text;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	Points   int    `json:"points" gorm:"default:10"` // 10, 15 oder 20
}

// TableName gibt explizit den Tabellennamen an.
func (GameQuestion) TableName() string {
	return "game_questions"
}

// GameSession speichert den Spielstand eines laufenden oder pausierten
// Spiels (aufgedeckte Kacheln, Teams, Punkte) als JSON-Blob.
type GameSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TopicID   uint   `json:"topic_id" gorm:"index;not null"`
	Name      string `json:"name"`
	StateJSON []byte `json:"state" gorm:"type:jsonb"`
}

// TableName gibt explizit den Tabellennamen an.
func (GameSession) TableName() string {
	return "game_sessions"
}
