package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gowithe/classready/config"
	"github.com/Gowithe/classready/models"
	"github.com/Gowithe/classready/providers"
	"github.com/Gowithe/classready/providers/openai"
	"github.com/Gowithe/classready/services"
	"github.com/Gowithe/classready/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	bundlesGeneratedCounter    prometheus.Counter
	fallbackBundlesCounter     prometheus.Counter
	practiceSubmissionsCounter prometheus.Counter
)

func init() {
	bundlesGeneratedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lesson_bundles_generated_total",
			Help: "Total number of lesson bundles generated.",
		},
	)
	fallbackBundlesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lesson_bundles_fallback_total",
			Help: "Total number of generations that served the fallback bundle.",
		},
	)
	practiceSubmissionsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "practice_submissions_total",
			Help: "Total number of submitted practice worksheets.",
		},
	)
	prometheus.MustRegister(bundlesGeneratedCounter, fallbackBundlesCounter, practiceSubmissionsCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		// Öffentliche Schüler-Endpoints bleiben ohne Key erreichbar
		if strings.HasPrefix(c.Request.URL.Path, "/p/") || c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.")

	// Auto-Migration
	if gin.Mode() == gin.DebugMode {
		logging.Info("Debug mode detected. Dropping tables for fresh start.")
		db.Migrator().DropTable(
			&models.Topic{}, &models.GameQuestion{}, &models.GameSession{},
			&models.PracticeItem{}, &models.PracticeLink{}, &models.PracticeSubmission{},
			&models.Classroom{}, &models.ClassroomStudent{}, &models.Assignment{},
			&models.LibrarySubject{}, &models.LibraryUnit{}, &models.LibraryRating{}, &models.LibraryClone{},
		)
	}
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(
		&models.Topic{}, &models.GameQuestion{}, &models.GameSession{},
		&models.PracticeItem{}, &models.PracticeLink{}, &models.PracticeSubmission{},
		&models.Classroom{}, &models.ClassroomStudent{}, &models.Assignment{},
		&models.LibrarySubject{}, &models.LibraryUnit{}, &models.LibraryRating{}, &models.LibraryClone{},
	)

	// Setup Services
	profile := services.ProfileByName(cfg.LessonProfile)
	logging.Info("Lesson profile loaded", zap.String("profile", profile.Name))
	normalizer := services.NewBundleNormalizer(profile, logging)

	var textProvider providers.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.TextModel)
		if err != nil {
			logging.Fatal("OpenAI client creation failed", zap.Error(err))
		}
		textProvider = client
		logging.Info("Text provider loaded", zap.String("provider", client.Name()), zap.String("model", cfg.TextModel))
	} else {
		logging.Warn("No OPENAI_API_KEY set. All generations will use the fallback bundle.")
	}

	generator := services.NewLessonGenerator(textProvider, normalizer, cfg.GenerateTimeout, logging)
	store := services.NewBundleStore(db, logging)

	var s3Client *s3.Client
	if cfg.ExportEnabled() {
		s3Client, err = storage.NewS3Client(cfg)
		if err != nil {
			logging.Fatal("S3 client creation failed", zap.Error(err))
		}
		logging.Info("Bundle export to S3 enabled", zap.String("bucket", cfg.ExportS3Bucket))
	}

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup Routes
	setupTopicRoutes(router, db, generator, store, normalizer, s3Client, cfg, logging)
	setupGameRoutes(router, db, logging)
	setupPracticeRoutes(router, db, cfg, logging)
	setupPublicPracticeRoutes(router, db, logging)
	setupClassroomRoutes(router, db, cfg, logging)
	setupLibraryRoutes(router, db, store, normalizer, logging)

	// Setup Cron: abgelaufene Practice-Links deaktivieren
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		res := db.Model(&models.PracticeLink{}).
			Where("active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, time.Now()).
			Update("active", false)
		if res.Error != nil {
			logging.Error("Cron link cleanup failed", zap.Error(res.Error))
		} else if res.RowsAffected > 0 {
			logging.Info("Cron link cleanup completed", zap.Int64("deactivated", res.RowsAffected))
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      180 * time.Second, // Generierung kann lange dauern
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// topicByParam lädt das Topic aus dem :id-Parameter oder schreibt die
// passende Fehler-Response.
func topicByParam(c *gin.Context, db *gorm.DB, log *zap.Logger) (*models.Topic, bool) {
	id := c.Param("id")
	var topic models.Topic
	if err := db.First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
			return nil, false
		}
		log.Error("DB error loading topic", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return nil, false
	}
	return &topic, true
}

func setupTopicRoutes(router *gin.Engine, db *gorm.DB, generator *services.LessonGenerator, store *services.BundleStore, normalizer *services.BundleNormalizer, s3Client *s3.Client, cfg *config.Config, log *zap.Logger) {
	rg := router.Group("/topics")

	rg.GET("/", func(c *gin.Context) {
		var topics []models.Topic
		if err := db.Order("created_at desc").Find(&topics).Error; err != nil {
			log.Error("Database query for topics failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, topics)
	})

	rg.POST("/", func(c *gin.Context) {
		type CreateTopic struct {
			Name        string `json:"name" binding:"required"`
			Description string `json:"description"`
			Level       string `json:"level"`
			Language    string `json:"language"`
			Style       string `json:"style"`
			TopicType   string `json:"topic_type"`
			Generate    bool   `json:"generate"`
		}
		var req CreateTopic
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		topic := models.Topic{
			Name:        req.Name,
			Description: req.Description,
			Level:       req.Level,
			Language:    req.Language,
			Style:       req.Style,
			TopicType:   req.TopicType,
		}
		if err := db.Create(&topic).Error; err != nil {
			log.Error("DB error creating topic", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create topic"})
			return
		}

		if req.Generate {
			bundle, fallbackUsed := generator.Generate(c.Request.Context(), services.GenerateRequest{
				Title:    topic.Name,
				Level:    topic.Level,
				Language: topic.Language,
				Style:    topic.Style,
			})
			bundlesGeneratedCounter.Inc()
			if fallbackUsed {
				fallbackBundlesCounter.Inc()
			}
			if err := store.Save(topic.ID, bundle, fallbackUsed); err != nil {
				log.Error("DB error saving generated bundle", zap.Uint("topic_id", topic.ID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bundle"})
				return
			}
			topic.FallbackUsed = fallbackUsed
		}

		c.JSON(http.StatusCreated, topic)
	})

	rg.GET("/:id", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, topic)
	})

	// Nur die gesendeten Felder binden, um Überschreiben zu verhindern
	rg.PUT("/:id", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "id")
		delete(updateData, "slides_json")
		if err := db.Model(topic).Updates(updateData).Error; err != nil {
			log.Error("DB error updating topic", zap.Uint("id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update topic"})
			return
		}
		c.JSON(http.StatusOK, topic)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, m := range []any{
				&models.GameQuestion{}, &models.GameSession{},
				&models.PracticeItem{}, &models.PracticeLink{}, &models.PracticeSubmission{},
			} {
				if err := tx.Where("topic_id = ?", topic.ID).Delete(m).Error; err != nil {
					return err
				}
			}
			return tx.Delete(topic).Error
		})
		if err != nil {
			log.Error("DB error deleting topic", zap.Uint("id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete topic"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "topic deleted"})
	})

	rg.POST("/:id/generate", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		bundle, fallbackUsed := generator.Generate(c.Request.Context(), services.GenerateRequest{
			Title:    topic.Name,
			Level:    topic.Level,
			Language: topic.Language,
			Style:    topic.Style,
		})
		bundlesGeneratedCounter.Inc()
		if fallbackUsed {
			fallbackBundlesCounter.Inc()
		}
		if err := store.Save(topic.ID, bundle, fallbackUsed); err != nil {
			log.Error("DB error saving generated bundle", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bundle"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"topic_id":      topic.ID,
			"fallback_used": fallbackUsed,
			"slides":        len(bundle.Slides),
			"practice":      len(bundle.Practice),
		})
	})

	rg.GET("/:id/bundle", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		bundle, err := store.Load(topic)
		if err != nil {
			log.Error("Failed to assemble bundle", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bundle"})
			return
		}
		c.JSON(http.StatusOK, bundle)
	})

	// Editierte Slides speichern. Normalisierung ist das verpflichtende Gate
	// für jeden Schreibpfad - auch Teacher-Edits werden repariert.
	rg.PUT("/:id/slides", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a json object with a slides array"})
			return
		}
		normalized, err := normalizer.Normalize(map[string]any{"slides": body["slides"]})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slides payload"})
			return
		}
		slidesJSON, err := json.Marshal(normalized.Slides)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode slides"})
			return
		}
		if err := db.Model(topic).Update("slides_json", slidesJSON).Error; err != nil {
			log.Error("DB error saving slides", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save slides"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"slides": len(normalized.Slides)})
	})

	rg.POST("/:id/export", func(c *gin.Context) {
		if s3Client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bundle export is not configured"})
			return
		}
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		bundle, err := store.Load(topic)
		if err != nil {
			log.Error("Failed to assemble bundle for export", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bundle"})
			return
		}
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode bundle"})
			return
		}
		key := fmt.Sprintf("topics/%d/bundle-%s.json", topic.ID, time.Now().UTC().Format("20060102-150405"))
		link, err := storage.UploadJSON(c.Request.Context(), s3Client, cfg.ExportS3Bucket, key, data, cfg)
		if err != nil {
			log.Error("S3 upload failed", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		log.Info("Bundle exported", zap.Uint("topic_id", topic.ID), zap.String("key", key))
		c.JSON(http.StatusOK, gin.H{"link": link})
	})
}

func setupGameRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/topics/:id/game")

	rg.GET("/sets", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var tiles []models.GameQuestion
		if err := db.Where("topic_id = ?", topic.ID).
			Order("set_no, tile_no").Find(&tiles).Error; err != nil {
			log.Error("Database query for game tiles failed", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		sets := map[string][]models.GameQuestion{}
		for _, t := range tiles {
			key := strconv.Itoa(t.SetNo)
			sets[key] = append(sets[key], t)
		}
		c.JSON(http.StatusOK, sets)
	})

	rg.GET("/sessions", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var sessions []models.GameSession
		if err := db.Where("topic_id = ?", topic.ID).
			Order("updated_at desc").Find(&sessions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, sessions)
	})

	rg.POST("/sessions", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		type CreateSession struct {
			Name  string          `json:"name"`
			State json.RawMessage `json:"state"`
		}
		var req CreateSession
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		session := models.GameSession{
			TopicID:   topic.ID,
			Name:      req.Name,
			StateJSON: req.State,
		}
		if err := db.Create(&session).Error; err != nil {
			log.Error("DB error creating game session", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
			return
		}
		c.JSON(http.StatusCreated, session)
	})

	rg.GET("/sessions/:sid", func(c *gin.Context) {
		var session models.GameSession
		if err := db.First(&session, c.Param("sid")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, session)
	})

	rg.PUT("/sessions/:sid", func(c *gin.Context) {
		var session models.GameSession
		if err := db.First(&session, c.Param("sid")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		type UpdateSession struct {
			Name  string          `json:"name"`
			State json.RawMessage `json:"state"`
		}
		var req UpdateSession
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updates := gameSessionUpdates(req.Name, req.State)
		if len(updates) == 0 {
			c.JSON(http.StatusOK, session)
			return
		}
		if err := db.Model(&session).Updates(updates).Error; err != nil {
			log.Error("DB error updating game session", zap.Uint("session_id", session.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update session"})
			return
		}
		c.JSON(http.StatusOK, session)
	})
}

// gameSessionUpdates baut die Update-Map für eine Session. Ein Request ohne
// "state" lässt den gespeicherten Board-State unangetastet, statt ihn mit
// NULL zu überschreiben.
func gameSessionUpdates(name string, state json.RawMessage) map[string]any {
	updates := map[string]any{}
	if state != nil {
		updates["state_json"] = []byte(state)
	}
	if name != "" {
		updates["name"] = name
	}
	return updates
}

// practiceWorksheet ist die Schüler-Sicht auf eine Übungsfrage: ohne
// correct_index und explain.
type practiceWorksheetItem struct {
	Position int      `json:"position"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
}

func worksheetForTopic(db *gorm.DB, topicID uint, log *zap.Logger) ([]practiceWorksheetItem, []models.PracticeItem, error) {
	var items []models.PracticeItem
	if err := db.Where("topic_id = ?", topicID).Order("position").Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return worksheetItems(items, topicID, log), items, nil
}

// worksheetItems projiziert die Items auf die Schüler-Sicht. Zeilen mit
// kaputtem Choices-JSON werden geloggt und übersprungen statt mit leeren
// Choices ausgeliefert.
func worksheetItems(items []models.PracticeItem, topicID uint, log *zap.Logger) []practiceWorksheetItem {
	sheet := make([]practiceWorksheetItem, 0, len(items))
	for _, it := range items {
		var choices []string
		if len(it.ChoicesJSON) > 0 {
			if err := json.Unmarshal(it.ChoicesJSON, &choices); err != nil {
				log.Warn("skipping practice item with bad choices json",
					zap.Uint("topic_id", topicID), zap.Int("position", it.Position), zap.Error(err))
				continue
			}
		}
		sheet = append(sheet, practiceWorksheetItem{
			Position: it.Position,
			Question: it.Question,
			Choices:  choices,
		})
	}
	return sheet
}

// scoreSubmission bewertet eingereichte Antworten gegen die Items in
// Positions-Reihenfolge. Fehlende Antworten zählen als falsch.
func scoreSubmission(items []models.PracticeItem, answers []int) (int, int) {
	score := 0
	for i, it := range items {
		if i < len(answers) && answers[i] == it.CorrectIndex {
			score++
		}
	}
	return score, len(items)
}

func setupPracticeRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	rg := router.Group("/topics/:id/practice")

	rg.GET("/", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		sheet, _, err := worksheetForTopic(db, topic.ID, log)
		if err != nil {
			log.Error("Database query for practice items failed", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"topic_id": topic.ID, "questions": sheet})
	})

	rg.POST("/submit", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		type SubmitRequest struct {
			StudentName string `json:"student_name" binding:"required"`
			Answers     []int  `json:"answers" binding:"required"`
		}
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		_, items, err := worksheetForTopic(db, topic.ID, log)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		score, total := scoreSubmission(items, req.Answers)
		answersJSON, _ := json.Marshal(req.Answers)
		sub := models.PracticeSubmission{
			TopicID:     topic.ID,
			StudentName: req.StudentName,
			Score:       score,
			Total:       total,
			AnswersJSON: answersJSON,
		}
		if err := db.Create(&sub).Error; err != nil {
			log.Error("DB error saving submission", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
			return
		}
		practiceSubmissionsCounter.Inc()
		c.JSON(http.StatusCreated, gin.H{"score": score, "total": total})
	})

	rg.POST("/links", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		expires := time.Now().Add(cfg.PracticeLinkTTL)
		link := models.PracticeLink{
			TopicID:   topic.ID,
			Token:     uuid.NewString(),
			Active:    true,
			ExpiresAt: &expires,
		}
		if err := db.Create(&link).Error; err != nil {
			log.Error("DB error creating practice link", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create link"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"token":      link.Token,
			"path":       "/p/" + link.Token,
			"expires_at": link.ExpiresAt,
		})
	})

	rg.GET("/scores", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var subs []models.PracticeSubmission
		if err := db.Where("topic_id = ?", topic.ID).
			Order("created_at desc").Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, subs)
	})

	rg.GET("/scores.csv", func(c *gin.Context) {
		topic, ok := topicByParam(c, db, log)
		if !ok {
			return
		}
		var subs []models.PracticeSubmission
		if err := db.Where("topic_id = ?", topic.ID).
			Order("created_at").Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=scores-topic-%d.csv", topic.ID))
		w := csv.NewWriter(c.Writer)
		w.Write([]string{"student_name", "score", "total", "submitted_at"})
		for _, s := range subs {
			w.Write([]string{
				s.StudentName,
				strconv.Itoa(s.Score),
				strconv.Itoa(s.Total),
				s.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		w.Flush()
	})
}

// linkByToken lädt einen aktiven, nicht abgelaufenen Practice-Link.
func linkByToken(c *gin.Context, db *gorm.DB) (*models.PracticeLink, bool) {
	var link models.PracticeLink
	if err := db.Where("token = ?", c.Param("token")).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return nil, false
	}
	if !link.Active || (link.ExpiresAt != nil && link.ExpiresAt.Before(time.Now())) {
		c.JSON(http.StatusGone, gin.H{"error": "link expired"})
		return nil, false
	}
	return &link, true
}

func setupPublicPracticeRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/p")

	rg.GET("/:token", func(c *gin.Context) {
		link, ok := linkByToken(c, db)
		if !ok {
			return
		}
		var topic models.Topic
		if err := db.First(&topic, link.TopicID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		sheet, _, err := worksheetForTopic(db, link.TopicID, log)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"topic":     topic.Name,
			"questions": sheet,
		})
	})

	rg.POST("/:token/submit", func(c *gin.Context) {
		link, ok := linkByToken(c, db)
		if !ok {
			return
		}
		type SubmitRequest struct {
			StudentName string `json:"student_name" binding:"required"`
			Answers     []int  `json:"answers" binding:"required"`
		}
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		_, items, err := worksheetForTopic(db, link.TopicID, log)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		score, total := scoreSubmission(items, req.Answers)
		answersJSON, _ := json.Marshal(req.Answers)
		sub := models.PracticeSubmission{
			TopicID:     link.TopicID,
			LinkID:      &link.ID,
			StudentName: req.StudentName,
			Score:       score,
			Total:       total,
			AnswersJSON: answersJSON,
		}
		if err := db.Create(&sub).Error; err != nil {
			log.Error("DB error saving public submission", zap.Uint("link_id", link.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
			return
		}
		practiceSubmissionsCounter.Inc()
		c.JSON(http.StatusCreated, gin.H{"score": score, "total": total})
	})
}

func setupClassroomRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	rg := router.Group("/classrooms")

	rg.GET("/", func(c *gin.Context) {
		var rooms []models.Classroom
		if err := db.Order("name").Find(&rooms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, rooms)
	})

	rg.POST("/", func(c *gin.Context) {
		var room models.Classroom
		if err := c.ShouldBindJSON(&room); err != nil || room.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if err := db.Create(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create classroom"})
			return
		}
		c.JSON(http.StatusCreated, room)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		var room models.Classroom
		if err := db.First(&room, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "id")
		if err := db.Model(&room).Updates(updateData).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update classroom"})
			return
		}
		c.JSON(http.StatusOK, room)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		var room models.Classroom
		if err := db.First(&room, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("classroom_id = ?", room.ID).Delete(&models.ClassroomStudent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("classroom_id = ?", room.ID).Delete(&models.Assignment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&room).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete classroom"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "classroom deleted"})
	})

	rg.GET("/:id/students", func(c *gin.Context) {
		var students []models.ClassroomStudent
		if err := db.Where("classroom_id = ?", c.Param("id")).
			Order("number").Find(&students).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, students)
	})

	rg.POST("/:id/students", func(c *gin.Context) {
		var room models.Classroom
		if err := db.First(&room, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		var student models.ClassroomStudent
		if err := c.ShouldBindJSON(&student); err != nil || student.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		student.ClassroomID = room.ID
		if err := db.Create(&student).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create student"})
			return
		}
		c.JSON(http.StatusCreated, student)
	})

	// Roster-Import: eine Zeile pro Schüler, "nummer,name,spitzname"
	rg.POST("/:id/students/import", func(c *gin.Context) {
		var room models.Classroom
		if err := db.First(&room, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		type ImportRequest struct {
			Data string `json:"data" binding:"required"`
		}
		var req ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		created := 0
		skipped := 0
		for _, line := range strings.Split(req.Data, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			parts := strings.SplitN(line, ",", 3)
			student := models.ClassroomStudent{ClassroomID: room.ID}
			if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
				student.Number = n
				if len(parts) > 1 {
					student.Name = strings.TrimSpace(parts[1])
				}
				if len(parts) > 2 {
					student.Nickname = strings.TrimSpace(parts[2])
				}
			} else {
				// Zeile ohne Nummer: alles ab dem ersten Feld ist der Name
				student.Name = strings.TrimSpace(parts[0])
				if len(parts) > 1 {
					student.Nickname = strings.TrimSpace(parts[1])
				}
			}
			if student.Name == "" {
				skipped++
				continue
			}
			if err := db.Create(&student).Error; err != nil {
				skipped++
				continue
			}
			created++
		}
		log.Info("Roster import completed", zap.Uint("classroom_id", room.ID),
			zap.Int("created", created), zap.Int("skipped", skipped))
		c.JSON(http.StatusOK, gin.H{"created": created, "skipped": skipped})
	})

	rg.PUT("/:id/students/:sid", func(c *gin.Context) {
		var student models.ClassroomStudent
		if err := db.Where("classroom_id = ?", c.Param("id")).
			First(&student, c.Param("sid")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "id")
		delete(updateData, "classroom_id")
		if err := db.Model(&student).Updates(updateData).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update student"})
			return
		}
		c.JSON(http.StatusOK, student)
	})

	rg.DELETE("/:id/students/:sid", func(c *gin.Context) {
		res := db.Where("classroom_id = ?", c.Param("id")).
			Delete(&models.ClassroomStudent{}, c.Param("sid"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete student"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
	})

	rg.GET("/:id/assignments", func(c *gin.Context) {
		var assignments []models.Assignment
		if err := db.Where("classroom_id = ?", c.Param("id")).
			Order("created_at desc").Find(&assignments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, assignments)
	})

	// Erstellt Assignment + zugehörigen Practice-Link in einem Schritt.
	rg.POST("/:id/assignments", func(c *gin.Context) {
		var room models.Classroom
		if err := db.First(&room, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		type CreateAssignment struct {
			TopicID      uint       `json:"topic_id" binding:"required"`
			Title        string     `json:"title" binding:"required"`
			Description  string     `json:"description"`
			ExerciseType string     `json:"exercise_type"`
			DueDate      *time.Time `json:"due_date"`
		}
		var req CreateAssignment
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		var topic models.Topic
		if err := db.First(&topic, req.TopicID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
			return
		}

		var assignment models.Assignment
		var link models.PracticeLink
		err := db.Transaction(func(tx *gorm.DB) error {
			expires := time.Now().Add(cfg.PracticeLinkTTL)
			if req.DueDate != nil {
				expires = *req.DueDate
			}
			link = models.PracticeLink{
				TopicID:   topic.ID,
				Token:     uuid.NewString(),
				Active:    true,
				ExpiresAt: &expires,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			exerciseType := req.ExerciseType
			if exerciseType == "" {
				exerciseType = "practice"
			}
			assignment = models.Assignment{
				ClassroomID:    room.ID,
				TopicID:        topic.ID,
				PracticeLinkID: &link.ID,
				Title:          req.Title,
				Description:    req.Description,
				ExerciseType:   exerciseType,
				DueDate:        req.DueDate,
				Active:         true,
			}
			return tx.Create(&assignment).Error
		})
		if err != nil {
			log.Error("DB error creating assignment", zap.Uint("classroom_id", room.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create assignment"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"assignment": assignment,
			"link":       gin.H{"token": link.Token, "path": "/p/" + link.Token},
		})
	})
}

// libraryUnitByParam lädt das Library-Unit aus dem :uid-Parameter oder
// schreibt die passende Fehler-Response.
func libraryUnitByParam(c *gin.Context, db *gorm.DB, log *zap.Logger) (*models.LibraryUnit, bool) {
	uid := c.Param("uid")
	var unit models.LibraryUnit
	if err := db.First(&unit, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unit not found"})
			return nil, false
		}
		log.Error("DB error loading library unit", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return nil, false
	}
	return &unit, true
}

// libraryUnitBundle baut aus den JSON-Blobs eines Units das rohe Bundle-
// Objekt für den Normalizer. Kaputte Blobs werden weggelassen; der
// Normalizer füllt die Lücken auf.
func libraryUnitBundle(u *models.LibraryUnit) map[string]any {
	raw := map[string]any{}
	for key, blob := range map[string][]byte{
		"slides":   u.SlidesJSON,
		"game":     u.GameJSON,
		"practice": u.PracticeJSON,
	} {
		if len(blob) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal(blob, &v); err == nil {
			raw[key] = v
		}
	}
	return raw
}

func setupLibraryRoutes(router *gin.Engine, db *gorm.DB, store *services.BundleStore, normalizer *services.BundleNormalizer, log *zap.Logger) {
	rg := router.Group("/library")

	// Browse: Fächer mit Zählern, meistgeklonte Units, freie Units
	rg.GET("/", func(c *gin.Context) {
		var subjects []models.LibrarySubject
		if err := db.Where("active = ?", true).
			Order("sort_order, name").Find(&subjects).Error; err != nil {
			log.Error("Database query for library subjects failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		subjectList := make([]gin.H, 0, len(subjects))
		for _, s := range subjects {
			var unitCount, freeCount int64
			db.Model(&models.LibraryUnit{}).
				Where("subject_id = ? AND active = ?", s.ID, true).Count(&unitCount)
			db.Model(&models.LibraryUnit{}).
				Where("subject_id = ? AND active = ? AND free = ?", s.ID, true, true).Count(&freeCount)
			subjectList = append(subjectList, gin.H{
				"subject":    s,
				"unit_count": unitCount,
				"free_count": freeCount,
			})
		}

		var popular, free []models.LibraryUnit
		db.Where("active = ?", true).Order("clone_count desc").Limit(6).Find(&popular)
		db.Where("active = ? AND free = ?", true, true).Order("unit_number").Limit(6).Find(&free)
		c.JSON(http.StatusOK, gin.H{"subjects": subjectList, "popular": popular, "free": free})
	})

	rg.GET("/search", func(c *gin.Context) {
		query := db.Where("active = ?", true)
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + q + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ? OR tags ILIKE ?", like, like, like)
		}
		if sid := c.Query("subject_id"); sid != "" {
			query = query.Where("subject_id = ?", sid)
		}
		if c.Query("free_only") == "true" {
			query = query.Where("free = ?", true)
		}
		var units []models.LibraryUnit
		if err := query.Order("clone_count desc").Limit(50).Find(&units).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, units)
	})

	rg.POST("/subjects", func(c *gin.Context) {
		var subject models.LibrarySubject
		if err := c.ShouldBindJSON(&subject); err != nil || subject.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		subject.Active = true
		if err := db.Create(&subject).Error; err != nil {
			log.Error("DB error creating library subject", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subject"})
			return
		}
		c.JSON(http.StatusCreated, subject)
	})

	rg.PUT("/subjects/:id", func(c *gin.Context) {
		var subject models.LibrarySubject
		if err := db.First(&subject, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "id")
		if err := db.Model(&subject).Updates(updateData).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subject"})
			return
		}
		c.JSON(http.StatusOK, subject)
	})

	// Soft-Delete: Fach und Units werden deaktiviert, nicht gelöscht
	rg.DELETE("/subjects/:id", func(c *gin.Context) {
		var subject models.LibrarySubject
		if err := db.First(&subject, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.LibraryUnit{}).
				Where("subject_id = ?", subject.ID).Update("active", false).Error; err != nil {
				return err
			}
			return tx.Model(&subject).Update("active", false).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "subject deactivated"})
	})

	rg.GET("/subjects/:id/units", func(c *gin.Context) {
		var subject models.LibrarySubject
		if err := db.First(&subject, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		var units []models.LibraryUnit
		if err := db.Where("subject_id = ? AND active = ?", subject.ID, true).
			Order("unit_number, sort_order").Find(&units).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject, "units": units})
	})

	rg.POST("/subjects/:id/units", func(c *gin.Context) {
		var subject models.LibrarySubject
		if err := db.First(&subject, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		var unit models.LibraryUnit
		if err := c.ShouldBindJSON(&unit); err != nil || unit.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		unit.SubjectID = subject.ID
		unit.Active = true
		if err := db.Create(&unit).Error; err != nil {
			log.Error("DB error creating library unit", zap.Uint("subject_id", subject.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create unit"})
			return
		}
		c.JSON(http.StatusCreated, unit)
	})

	// Detail zählt den View und liefert eine Slide-Vorschau
	rg.GET("/units/:uid", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		db.Model(unit).UpdateColumn("view_count", gorm.Expr("view_count + 1"))

		preview := []any{}
		if len(unit.SlidesJSON) > 0 {
			var slides []any
			if err := json.Unmarshal(unit.SlidesJSON, &slides); err == nil {
				if unit.PreviewSlides > 0 && len(slides) > unit.PreviewSlides {
					slides = slides[:unit.PreviewSlides]
				}
				preview = slides
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"unit":       unit,
			"avg_rating": unit.AvgRating(),
			"preview":    preview,
		})
	})

	rg.PUT("/units/:uid", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		delete(updateData, "id")
		if err := db.Model(unit).Updates(updateData).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update unit"})
			return
		}
		c.JSON(http.StatusOK, unit)
	})

	rg.DELETE("/units/:uid", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		if err := db.Model(unit).Update("active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete unit"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "unit deactivated"})
	})

	rg.POST("/units/:uid/rate", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		type RateRequest struct {
			Rating int    `json:"rating" binding:"required"`
			Review string `json:"review"`
		}
		var req RateRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.LibraryRating{
				UnitID: unit.ID,
				Rating: req.Rating,
				Review: req.Review,
			}).Error; err != nil {
				return err
			}
			return tx.Model(unit).Updates(map[string]any{
				"rating_sum":   gorm.Expr("rating_sum + ?", req.Rating),
				"rating_count": gorm.Expr("rating_count + 1"),
			}).Error
		})
		if err != nil {
			log.Error("DB error saving rating", zap.Uint("unit_id", unit.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
			return
		}
		if err := db.First(unit, unit.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"rating_count": unit.RatingCount,
			"avg_rating":   unit.AvgRating(),
		})
	})

	// Klonen legt ein eigenes Topic mit den Unit-Inhalten an. Auch hier ist
	// Normalisierung das Gate: Unit-Blobs sind editierbar und damit untrusted.
	rg.POST("/units/:uid/clone", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		if !unit.Active {
			c.JSON(http.StatusGone, gin.H{"error": "unit no longer available"})
			return
		}
		type CloneRequest struct {
			Name string `json:"name"`
		}
		var req CloneRequest
		_ = c.ShouldBindJSON(&req) // Body ist optional

		bundle, err := normalizer.Normalize(libraryUnitBundle(unit))
		if err != nil {
			log.Error("Library unit has no usable content", zap.Uint("unit_id", unit.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unit content unreadable"})
			return
		}

		var subject models.LibrarySubject
		description := unit.Description
		if description == "" && db.First(&subject, unit.SubjectID).Error == nil {
			description = "From library: " + subject.Name
		}
		name := req.Name
		if name == "" {
			name = unit.Name
		}
		topic := models.Topic{
			Name:        name,
			Description: description,
			TopicType:   "library",
		}
		if err := db.Create(&topic).Error; err != nil {
			log.Error("DB error creating cloned topic", zap.Uint("unit_id", unit.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create topic"})
			return
		}
		if err := store.Save(topic.ID, bundle, false); err != nil {
			log.Error("DB error saving cloned bundle", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bundle"})
			return
		}
		db.Create(&models.LibraryClone{UnitID: unit.ID, TopicID: topic.ID})
		db.Model(unit).UpdateColumn("clone_count", gorm.Expr("clone_count + 1"))
		log.Info("Library unit cloned", zap.Uint("unit_id", unit.ID), zap.Uint("topic_id", topic.ID))
		c.JSON(http.StatusCreated, gin.H{
			"topic_id": topic.ID,
			"slides":   len(bundle.Slides),
			"practice": len(bundle.Practice),
		})
	})

	// Übernimmt die Inhalte eines bestehenden Topics in ein Unit
	rg.POST("/units/:uid/import-from-topic", func(c *gin.Context) {
		unit, ok := libraryUnitByParam(c, db, log)
		if !ok {
			return
		}
		type ImportRequest struct {
			TopicID uint `json:"topic_id" binding:"required"`
		}
		var req ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		var topic models.Topic
		if err := db.First(&topic, req.TopicID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
			return
		}
		bundle, err := store.Load(&topic)
		if err != nil {
			log.Error("Failed to assemble bundle for import", zap.Uint("topic_id", topic.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bundle"})
			return
		}
		slidesJSON, _ := json.Marshal(bundle.Slides)
		gameJSON, _ := json.Marshal(bundle.Game)
		practiceJSON, _ := json.Marshal(bundle.Practice)
		if err := db.Model(unit).Updates(map[string]any{
			"slides_json":   slidesJSON,
			"game_json":     gameJSON,
			"practice_json": practiceJSON,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update unit"})
			return
		}
		log.Info("Topic imported into library unit", zap.Uint("unit_id", unit.ID), zap.Uint("topic_id", topic.ID))
		c.JSON(http.StatusOK, gin.H{
			"unit_id":  unit.ID,
			"slides":   len(bundle.Slides),
			"practice": len(bundle.Practice),
		})
	})
}
