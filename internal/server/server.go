// Package server exposes the HTTP API: the public record envelope plus
// the authenticated admin surface for content management and auditing.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meigu/internal/logger"
	"meigu/internal/notify"
	"meigu/internal/store"
)

// TopicRecords is the change-notification topic published after every
// successful content mutation.
const TopicRecords = "records"

// Repository is the persistence surface the handlers need.
type Repository interface {
	ListArticles() ([]store.ArticleRow, error)
	ListNews() ([]store.NewsRow, error)
	CreateArticle(row *store.ArticleRow) error
	UpdateArticle(row *store.ArticleRow) error
	DeleteArticle(id int64) error
	CreateNews(row *store.NewsRow) error
	UpdateNews(row *store.NewsRow) error
	DeleteNews(id int64) error
	Authenticate(username, password string) (*store.UserRow, error)
	AppendLog(row *store.OperationLogRow) error
	ListLogs() ([]store.OperationLogRow, error)
}

// Server holds the handler dependencies.
type Server struct {
	repo   Repository
	hub    *notify.Hub
	logger *logger.Logger
}

// New creates a server over the given repository.
func New(repo Repository, hub *notify.Hub, log *logger.Logger) *Server {
	return &Server{
		repo:   repo,
		hub:    hub,
		logger: log,
	}
}

// Register mounts the API routes.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/api/data", s.handleData)
	e.POST("/api/auth", s.handleAuth)

	e.POST("/api/manage/articles", s.handleCreateArticle)
	e.PUT("/api/manage/articles/:id", s.handleUpdateArticle)
	e.DELETE("/api/manage/articles/:id", s.handleDeleteArticle)

	e.POST("/api/manage/news", s.handleCreateNews)
	e.PUT("/api/manage/news/:id", s.handleUpdateNews)
	e.DELETE("/api/manage/news/:id", s.handleDeleteNews)

	e.GET("/api/logs", s.handleListLogs)
	e.POST("/api/logs", s.handleAppendLog)
}

// response is the uniform envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func respond(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, response{
		Success: code < http.StatusBadRequest,
		Data:    data,
		Message: message,
	})
}
