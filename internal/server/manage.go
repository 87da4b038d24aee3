package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"meigu/internal/store"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleAuth(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	user, err := s.repo.Authenticate(req.Username, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		s.logger.Warn("login rejected", "username", req.Username)

		return respond(c, http.StatusUnauthorized, nil, "用户名或密码错误")
	}

	if err != nil {
		s.logger.Error("login failed", "error", err)

		return respond(c, http.StatusInternalServerError, nil, "登录失败")
	}

	return respond(c, http.StatusOK, map[string]string{"username": user.Username}, "登录成功")
}

// actor resolves the admin username attached to a mutation request.
func actor(c echo.Context) string {
	if u := c.Request().Header.Get("X-Admin-User"); u != "" {
		return u
	}

	return "admin"
}

// recordMutation appends the audit entry and wakes listening pages.
func (s *Server) recordMutation(c echo.Context, action, targetType string, targetID int64, detail string) {
	entry := &store.OperationLogRow{
		Username:   actor(c),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   datatypes.JSONMap{"detail": detail},
	}

	if err := s.repo.AppendLog(entry); err != nil {
		s.logger.Error("failed to append operation log", "error", err)
	}

	s.hub.Publish(TopicRecords)
}

func (s *Server) mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrMissingFields):
		return respond(c, http.StatusBadRequest, nil, "缺少必填字段")
	case errors.Is(err, store.ErrNotFound):
		return respond(c, http.StatusNotFound, nil, "记录不存在")
	default:
		s.logger.Error("mutation failed", "error", err)

		return respond(c, http.StatusInternalServerError, nil, "操作失败")
	}
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (s *Server) handleCreateArticle(c echo.Context) error {
	var row store.ArticleRow
	if err := c.Bind(&row); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	if err := s.repo.CreateArticle(&row); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "create", "article", row.ID, row.Title)

	return respond(c, http.StatusOK, row, "创建成功")
}

func (s *Server) handleUpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, nil, "无效的记录编号")
	}

	var row store.ArticleRow
	if err := c.Bind(&row); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	row.ID = id

	if err := s.repo.UpdateArticle(&row); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "update", "article", id, row.Title)

	return respond(c, http.StatusOK, row, "更新成功")
}

func (s *Server) handleDeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, nil, "无效的记录编号")
	}

	if err := s.repo.DeleteArticle(id); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "delete", "article", id, "")

	return respond(c, http.StatusOK, nil, "删除成功")
}

func (s *Server) handleCreateNews(c echo.Context) error {
	var row store.NewsRow
	if err := c.Bind(&row); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	if err := s.repo.CreateNews(&row); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "create", "news", row.ID, row.Title)

	return respond(c, http.StatusOK, row, "创建成功")
}

func (s *Server) handleUpdateNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, nil, "无效的记录编号")
	}

	var row store.NewsRow
	if err := c.Bind(&row); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	row.ID = id

	if err := s.repo.UpdateNews(&row); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "update", "news", id, row.Title)

	return respond(c, http.StatusOK, row, "更新成功")
}

func (s *Server) handleDeleteNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, nil, "无效的记录编号")
	}

	if err := s.repo.DeleteNews(id); err != nil {
		return s.mutationError(c, err)
	}

	s.recordMutation(c, "delete", "news", id, "")

	return respond(c, http.StatusOK, nil, "删除成功")
}

func (s *Server) handleListLogs(c echo.Context) error {
	logs, err := s.repo.ListLogs()
	if err != nil {
		s.logger.Error("failed to list logs", "error", err)

		return respond(c, http.StatusInternalServerError, nil, "日志加载失败")
	}

	return respond(c, http.StatusOK, logs, "")
}

func (s *Server) handleAppendLog(c echo.Context) error {
	var row store.OperationLogRow
	if err := c.Bind(&row); err != nil {
		return respond(c, http.StatusBadRequest, nil, "请求格式错误")
	}

	if err := s.repo.AppendLog(&row); err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			return respond(c, http.StatusBadRequest, nil, "缺少必填字段")
		}

		s.logger.Error("failed to append log", "error", err)

		return respond(c, http.StatusInternalServerError, nil, "操作失败")
	}

	return respond(c, http.StatusOK, nil, "记录成功")
}
