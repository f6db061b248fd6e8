package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort     string `envconfig:"HTTP_PORT" default:"4280"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// OpenAI text generation. An empty key is a valid state: the service
	// then serves the hand-authored fallback bundle.
	OpenAIAPIKey    string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `envconfig:"OPENAI_BASE_URL"`
	TextModel       string        `envconfig:"TEXT_MODEL" default:"gpt-4o-mini"`
	GenerateTimeout time.Duration `envconfig:"GENERATE_TIMEOUT" default:"120s"`

	// Lesson profile: "standard" (24-30 slides, 25-35 MCQ) oder
	// "compact" (18-24 slides, 20-30 MCQ).
	LessonProfile string `envconfig:"LESSON_PROFILE" default:"standard"`

	// Practice-Share-Links laufen nach dieser Dauer ab; der Cron-Job
	// deaktiviert abgelaufene Links.
	PracticeLinkTTL time.Duration `envconfig:"PRACTICE_LINK_TTL" default:"720h"`
	CronSchedule    string        `envconfig:"CRON_SCHEDULE" default:"0 3 * * *"`

	ExportS3Key    string `envconfig:"EXPORT_S3_KEY"`
	ExportS3Secret string `envconfig:"EXPORT_S3_SECRET"`
	ExportS3URL    string `envconfig:"EXPORT_S3_URL"`
	ExportS3Region string `envconfig:"EXPORT_S3_REGION" default:"eu-central-1"`
	ExportS3Bucket string `envconfig:"EXPORT_S3_BUCKET"`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// ExportEnabled meldet, ob Bundle-Exporte nach S3 konfiguriert sind.
func (c *Config) ExportEnabled() bool {
	return c.ExportS3URL != "" && c.ExportS3Bucket != "" && c.ExportS3Key != ""
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
