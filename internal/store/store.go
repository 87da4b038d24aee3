// Package store persists articles, news records, admin accounts and the
// operation audit trail in MySQL.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrMissingFields indicates a write with empty required fields.
var ErrMissingFields = errors.New("missing required fields")

// ErrNotFound indicates a record id that does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials indicates a failed username/password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// logListLimit caps the audit trail page returned to the admin UI.
const logListLimit = 200

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open connects to MySQL and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&ArticleRow{}, &NewsRow{}, &UserRow{}, &OperationLogRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB creates a store over an existing handle.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListArticles returns all articles, newest publish date first, ties
// broken by insertion time.
func (s *Store) ListArticles() ([]ArticleRow, error) {
	var rows []ArticleRow

	err := s.db.Order("publish_date DESC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return rows, nil
}

// ListNews returns all news records, newest event date first.
func (s *Store) ListNews() ([]NewsRow, error) {
	var rows []NewsRow

	err := s.db.Order("event_date DESC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	return rows, nil
}

// CreateArticle inserts an article. Title and publish date are required.
func (s *Store) CreateArticle(row *ArticleRow) error {
	if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.PublishDate) == "" {
		return fmt.Errorf("%w: title, publish_date", ErrMissingFields)
	}

	if err := s.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// UpdateArticle replaces the stored article with the given id.
func (s *Store) UpdateArticle(row *ArticleRow) error {
	if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.PublishDate) == "" {
		return fmt.Errorf("%w: title, publish_date", ErrMissingFields)
	}

	res := s.db.Model(&ArticleRow{}).Where("id = ?", row.ID).
		Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return fmt.Errorf("failed to update article: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: article %d", ErrNotFound, row.ID)
	}

	return nil
}

// DeleteArticle removes the article with the given id.
func (s *Store) DeleteArticle(id int64) error {
	res := s.db.Delete(&ArticleRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete article: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: article %d", ErrNotFound, id)
	}

	return nil
}

// CreateNews inserts a news record. Title and event date are required.
func (s *Store) CreateNews(row *NewsRow) error {
	if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.EventDate) == "" {
		return fmt.Errorf("%w: title, event_date", ErrMissingFields)
	}

	if err := s.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to create news record: %w", err)
	}

	return nil
}

// UpdateNews replaces the stored news record with the given id.
func (s *Store) UpdateNews(row *NewsRow) error {
	if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.EventDate) == "" {
		return fmt.Errorf("%w: title, event_date", ErrMissingFields)
	}

	res := s.db.Model(&NewsRow{}).Where("id = ?", row.ID).
		Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return fmt.Errorf("failed to update news record: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: news %d", ErrNotFound, row.ID)
	}

	return nil
}

// DeleteNews removes the news record with the given id.
func (s *Store) DeleteNews(id int64) error {
	res := s.db.Delete(&NewsRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete news record: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: news %d", ErrNotFound, id)
	}

	return nil
}

// Authenticate checks an admin login. Passwords are stored and compared
// as plain text, matching the accounts seeded by the legacy installer.
func (s *Store) Authenticate(username, password string) (*UserRow, error) {
	var user UserRow

	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// AppendLog records one admin mutation.
func (s *Store) AppendLog(row *OperationLogRow) error {
	if strings.TrimSpace(row.Username) == "" || strings.TrimSpace(row.Action) == "" {
		return fmt.Errorf("%w: username, action", ErrMissingFields)
	}

	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := s.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to append operation log: %w", err)
	}

	return nil
}

// ListLogs returns the newest audit entries, capped at the page limit.
func (s *Store) ListLogs() ([]OperationLogRow, error) {
	var rows []OperationLogRow

	err := s.db.Order("created_at DESC, id DESC").Limit(logListLimit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list operation logs: %w", err)
	}

	return rows, nil
}
