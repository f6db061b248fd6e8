package services

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gowithe/classready/models"
)

// BundleStore persistiert normalisierte Bundles: Slides als JSON am Topic,
// Game-Tiles und Practice-Fragen als eigene Zeilen. Laden setzt daraus wieder
// das kanonische Bundle zusammen. Es werden nur bereits normalisierte Bundles
// gespeichert - der Store prüft keine Invarianten nach.
type BundleStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBundleStore erstellt einen Store.
func NewBundleStore(db *gorm.DB, logger *zap.Logger) *BundleStore {
	return &BundleStore{db: db, logger: logger}
}

// Save schreibt das Bundle eines Topics in einer Transaktion. Tiles und
// Practice-Items werden per Upsert aktualisiert, überzählige Zeilen aus
// früheren Generationen entfernt.
func (s *BundleStore) Save(topicID uint, b Bundle, fallbackUsed bool) error {
	slidesJSON, err := json.Marshal(b.Slides)
	if err != nil {
		return fmt.Errorf("marshal slides: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Topic{}).Where("id = ?", topicID).Updates(map[string]any{
			"slides_json":   slidesJSON,
			"fallback_used": fallbackUsed,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for setIdx, key := range GameSetKeys {
			setNo := setIdx + 1
			for tileIdx, tile := range b.Game[key] {
				row := models.GameQuestion{
					TopicID:  topicID,
					SetNo:    setNo,
					TileNo:   tileIdx + 1,
					Question: tile.Question,
					Answer:   tile.Answer,
					Points:   tile.Points,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "topic_id"}, {Name: "set_no"}, {Name: "tile_no"}},
					DoUpdates: clause.AssignmentColumns([]string{"question", "answer", "points", "updated_at"}),
				}).Create(&row).Error; err != nil {
					return err
				}
			}
		}

		for i, q := range b.Practice {
			choicesJSON, err := json.Marshal(q.Choices)
			if err != nil {
				return fmt.Errorf("marshal choices: %w", err)
			}
			row := models.PracticeItem{
				TopicID:      topicID,
				Position:     i + 1,
				Question:     q.Question,
				ChoicesJSON:  choicesJSON,
				CorrectIndex: q.CorrectIndex,
				Explain:      q.Explain,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "topic_id"}, {Name: "position"}},
				DoUpdates: clause.AssignmentColumns([]string{"question", "choices_json", "correct_index", "explain", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}

		// Reste einer längeren Vorgänger-Generation aufräumen
		if err := tx.Where("topic_id = ? AND position > ?", topicID, len(b.Practice)).
			Delete(&models.PracticeItem{}).Error; err != nil {
			return err
		}
		return tx.Where("topic_id = ? AND tile_no > ?", topicID, TilesPerSet).
			Delete(&models.GameQuestion{}).Error
	})
}

// Load setzt das kanonische Bundle eines Topics aus der Datenbank zusammen.
func (s *BundleStore) Load(topic *models.Topic) (Bundle, error) {
	var b Bundle

	if len(topic.SlidesJSON) > 0 {
		if err := json.Unmarshal(topic.SlidesJSON, &b.Slides); err != nil {
			return Bundle{}, fmt.Errorf("unmarshal slides for topic %d: %w", topic.ID, err)
		}
	}

	var tiles []models.GameQuestion
	if err := s.db.Where("topic_id = ?", topic.ID).
		Order("set_no, tile_no").Find(&tiles).Error; err != nil {
		return Bundle{}, err
	}
	b.Game = make(map[string][]GameTile, len(GameSetKeys))
	for _, key := range GameSetKeys {
		b.Game[key] = []GameTile{}
	}
	for _, t := range tiles {
		key := fmt.Sprintf("%d", t.SetNo)
		b.Game[key] = append(b.Game[key], GameTile{
			Question: t.Question,
			Answer:   t.Answer,
			Points:   t.Points,
		})
	}

	var items []models.PracticeItem
	if err := s.db.Where("topic_id = ?", topic.ID).
		Order("position").Find(&items).Error; err != nil {
		return Bundle{}, err
	}
	b.Practice = make([]PracticeQuestion, 0, len(items))
	for _, it := range items {
		var choices []string
		if len(it.ChoicesJSON) > 0 {
			if err := json.Unmarshal(it.ChoicesJSON, &choices); err != nil {
				s.logger.Warn("skipping practice item with bad choices json",
					zap.Uint("topic_id", topic.ID), zap.Int("position", it.Position), zap.Error(err))
				continue
			}
		}
		b.Practice = append(b.Practice, PracticeQuestion{
			Question:     it.Question,
			Choices:      choices,
			CorrectIndex: it.CorrectIndex,
			Explain:      it.Explain,
		})
	}
	return b, nil
}
