package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"meigu/internal/logger"
	"meigu/internal/notify"
	"meigu/internal/store"
)

// MockRepository implements Repository with injectable behavior.
type MockRepository struct {
	ListArticlesFunc  func() ([]store.ArticleRow, error)
	ListNewsFunc      func() ([]store.NewsRow, error)
	CreateArticleFunc func(row *store.ArticleRow) error
	UpdateArticleFunc func(row *store.ArticleRow) error
	DeleteArticleFunc func(id int64) error
	CreateNewsFunc    func(row *store.NewsRow) error
	UpdateNewsFunc    func(row *store.NewsRow) error
	DeleteNewsFunc    func(id int64) error
	AuthenticateFunc  func(username, password string) (*store.UserRow, error)
	AppendLogFunc     func(row *store.OperationLogRow) error
	ListLogsFunc      func() ([]store.OperationLogRow, error)

	loggedActions []string
}

func (m *MockRepository) ListArticles() ([]store.ArticleRow, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc()
	}

	return nil, nil
}

func (m *MockRepository) ListNews() ([]store.NewsRow, error) {
	if m.ListNewsFunc != nil {
		return m.ListNewsFunc()
	}

	return nil, nil
}

func (m *MockRepository) CreateArticle(row *store.ArticleRow) error {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(row)
	}

	return nil
}

func (m *MockRepository) UpdateArticle(row *store.ArticleRow) error {
	if m.UpdateArticleFunc != nil {
		return m.UpdateArticleFunc(row)
	}

	return nil
}

func (m *MockRepository) DeleteArticle(id int64) error {
	if m.DeleteArticleFunc != nil {
		return m.DeleteArticleFunc(id)
	}

	return nil
}

func (m *MockRepository) CreateNews(row *store.NewsRow) error {
	if m.CreateNewsFunc != nil {
		return m.CreateNewsFunc(row)
	}

	return nil
}

func (m *MockRepository) UpdateNews(row *store.NewsRow) error {
	if m.UpdateNewsFunc != nil {
		return m.UpdateNewsFunc(row)
	}

	return nil
}

func (m *MockRepository) DeleteNews(id int64) error {
	if m.DeleteNewsFunc != nil {
		return m.DeleteNewsFunc(id)
	}

	return nil
}

func (m *MockRepository) Authenticate(username, password string) (*store.UserRow, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(username, password)
	}

	return nil, store.ErrInvalidCredentials
}

func (m *MockRepository) AppendLog(row *store.OperationLogRow) error {
	m.loggedActions = append(m.loggedActions, row.Action)

	if m.AppendLogFunc != nil {
		return m.AppendLogFunc(row)
	}

	return nil
}

func (m *MockRepository) ListLogs() ([]store.OperationLogRow, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc()
	}

	return nil, nil
}

func newTestServer(repo *MockRepository) (*echo.Echo, *notify.Hub) {
	hub := notify.NewHub()
	srv := New(repo, hub, logger.NewLogger("error"))

	e := echo.New()
	srv.Register(e)

	return e, hub
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandleData_ShapesMediaColumns(t *testing.T) {
	repo := &MockRepository{
		ListNewsFunc: func() ([]store.NewsRow, error) {
			return []store.NewsRow{
				{
					ID:        1,
					Title:     "美妆展",
					EventDate: "2025-01-10",
					Image:     `["a.jpg","b.jpg"]`,
					Video:     "v.mp4",
					CreatedAt: time.UnixMilli(1700000000000),
				},
			}, nil
		},
	}

	e, _ := newTestServer(repo)
	rec := doJSON(e, http.MethodGet, "/api/data", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Articles []json.RawMessage `json:"articles"`
			News     []struct {
				Image     []string `json:"image"`
				Video     []string `json:"video"`
				CreatedAt int64    `json:"createdAt"`
			} `json:"news"`
		} `json:"data"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !resp.Success {
		t.Fatal("expected success envelope")
	}

	news := resp.Data.News[0]

	if len(news.Image) != 2 || news.Image[0] != "a.jpg" {
		t.Errorf("image = %v, want JSON array expanded", news.Image)
	}

	if len(news.Video) != 1 || news.Video[0] != "v.mp4" {
		t.Errorf("video = %v, want bare value wrapped", news.Video)
	}

	if news.CreatedAt != 1700000000000 {
		t.Errorf("createdAt = %d, want epoch millis", news.CreatedAt)
	}

	if resp.Data.Articles == nil {
		t.Error("articles must serialize as an empty array")
	}
}

func TestHandleData_TypeFilter(t *testing.T) {
	repo := &MockRepository{
		ListNewsFunc: func() ([]store.NewsRow, error) {
			return []store.NewsRow{{ID: 1, Title: "活动", EventDate: "2025-01-01"}}, nil
		},
		ListArticlesFunc: func() ([]store.ArticleRow, error) {
			return []store.ArticleRow{{ID: 2, Title: "文章", PublishDate: "2025-01-02"}}, nil
		},
	}

	e, _ := newTestServer(repo)
	rec := doJSON(e, http.MethodGet, "/api/data?type=news", "")

	var resp struct {
		Data struct {
			Articles []json.RawMessage `json:"articles"`
			News     []json.RawMessage `json:"news"`
		} `json:"data"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(resp.Data.News) != 1 || len(resp.Data.Articles) != 0 {
		t.Errorf("news=%d articles=%d, want news only", len(resp.Data.News), len(resp.Data.Articles))
	}
}

func TestHandleAuth(t *testing.T) {
	repo := &MockRepository{
		AuthenticateFunc: func(username, password string) (*store.UserRow, error) {
			if username == "admin" && password == "secret" {
				return &store.UserRow{Username: "admin"}, nil
			}

			return nil, store.ErrInvalidCredentials
		},
	}

	e, _ := newTestServer(repo)

	rec := doJSON(e, http.MethodPost, "/api/auth", `{"username":"admin","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth", `{"username":"admin","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleCreateNews_WritesAuditAndNotifies(t *testing.T) {
	repo := &MockRepository{}
	e, hub := newTestServer(repo)
	ch := hub.Subscribe(TopicRecords)

	rec := doJSON(e, http.MethodPost, "/api/manage/news",
		`{"title":"新活动","date":"2025-02-01"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if len(repo.loggedActions) != 1 || repo.loggedActions[0] != "create" {
		t.Errorf("audit actions = %v", repo.loggedActions)
	}

	select {
	case <-ch:
	default:
		t.Error("expected change notification after create")
	}
}

func TestHandleUpdateNews_MissingRecord(t *testing.T) {
	repo := &MockRepository{
		UpdateNewsFunc: func(*store.NewsRow) error { return store.ErrNotFound },
	}

	e, _ := newTestServer(repo)
	rec := doJSON(e, http.MethodPut, "/api/manage/news/42",
		`{"title":"改动","date":"2025-02-01"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleCreateArticle_MissingFields(t *testing.T) {
	repo := &MockRepository{
		CreateArticleFunc: func(*store.ArticleRow) error { return store.ErrMissingFields },
	}

	e, _ := newTestServer(repo)
	rec := doJSON(e, http.MethodPost, "/api/manage/articles", `{"content":"正文"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleDeleteArticle_InvalidID(t *testing.T) {
	e, _ := newTestServer(&MockRepository{})
	rec := doJSON(e, http.MethodDelete, "/api/manage/articles/abc", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDecodeStoredList(t *testing.T) {
	if got := decodeStoredList(""); len(got) != 0 {
		t.Errorf("empty column -> %v", got)
	}

	if got := decodeStoredList(`["x","y"]`); len(got) != 2 {
		t.Errorf("array column -> %v", got)
	}

	if got := decodeStoredList("[broken"); len(got) != 1 || got[0] != "[broken" {
		t.Errorf("malformed column -> %v, want bare value", got)
	}
}
