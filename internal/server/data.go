package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"meigu/internal/store"
)

// articlePayload is the wire shape of one article in the envelope.
type articlePayload struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Link      string `json:"link"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}

// newsPayload is the wire shape of one news record. Media columns are
// decoded into arrays here; the people list columns pass through as
// stored text because legacy rows hold newline-joined notes the page
// normalizer knows how to split.
type newsPayload struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Location         string   `json:"location"`
	Organizer        string   `json:"organizer"`
	CoOrganizer      string   `json:"coOrganizer"`
	Sponsor          string   `json:"sponsor"`
	Purpose          string   `json:"purpose"`
	Content          string   `json:"content"`
	CoreFunction     string   `json:"coreFunction"`
	Highlights       string   `json:"highlights"`
	Participants     string   `json:"participants,omitempty"`
	Staff            string   `json:"staff,omitempty"`
	ParticipantsList string   `json:"participants_list,omitempty"`
	StaffList        string   `json:"staff_list,omitempty"`
	Image            []string `json:"image"`
	Video            []string `json:"video"`
	CoverImage       string   `json:"coverImage"`
	EventScale       string   `json:"eventScale"`
	EventFee         string   `json:"eventFee"`
	ContactPhone     string   `json:"contactPhone"`
	RegistrationLink string   `json:"registrationLink"`
	OfficialWebsite  string   `json:"officialWebsite"`
	Category         string   `json:"category"`
	CreatedAt        int64    `json:"createdAt"`
}

// envelopeData is the payload of GET /api/data.
type envelopeData struct {
	Articles []articlePayload `json:"articles"`
	News     []newsPayload    `json:"news"`
}

func (s *Server) handleData(c echo.Context) error {
	// type=articles|news narrows the envelope; anything else means both.
	contentType := c.QueryParam("type")

	data := envelopeData{
		Articles: []articlePayload{},
		News:     []newsPayload{},
	}

	if contentType != "news" {
		articles, err := s.repo.ListArticles()
		if err != nil {
			s.logger.Error("failed to list articles", "error", err)

			return respond(c, http.StatusInternalServerError, nil, "数据加载失败")
		}

		for _, row := range articles {
			data.Articles = append(data.Articles, shapeArticle(row))
		}
	}

	if contentType != "articles" {
		news, err := s.repo.ListNews()
		if err != nil {
			s.logger.Error("failed to list news", "error", err)

			return respond(c, http.StatusInternalServerError, nil, "数据加载失败")
		}

		for _, row := range news {
			data.News = append(data.News, shapeNews(row))
		}
	}

	return respond(c, http.StatusOK, data, "")
}

// epochMillis guards against the zero time serializing as a huge
// negative timestamp.
func epochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

func shapeArticle(row store.ArticleRow) articlePayload {
	return articlePayload{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Link:      row.Link,
		Category:  row.Category,
		Date:      row.PublishDate,
		Author:    row.Author,
		CreatedAt: epochMillis(row.CreatedAt),
	}
}

func shapeNews(row store.NewsRow) newsPayload {
	return newsPayload{
		ID:               row.ID,
		Title:            row.Title,
		Subtitle:         row.Subtitle,
		Date:             row.EventDate,
		Time:             row.EventTime,
		Location:         row.Location,
		Organizer:        row.Organizer,
		CoOrganizer:      row.CoOrganizer,
		Sponsor:          row.Sponsor,
		Purpose:          row.Purpose,
		Content:          row.Content,
		CoreFunction:     row.CoreFunction,
		Highlights:       row.Highlights,
		Participants:     row.Participants,
		Staff:            row.Staff,
		ParticipantsList: row.ParticipantsList,
		StaffList:        row.StaffList,
		Image:            decodeStoredList(row.Image),
		Video:            decodeStoredList(row.Video),
		CoverImage:       row.CoverImage,
		EventScale:       row.EventScale,
		EventFee:         row.EventFee,
		ContactPhone:     row.ContactPhone,
		RegistrationLink: row.RegistrationLink,
		OfficialWebsite:  row.OfficialWebsite,
		Category:         row.Category,
		CreatedAt:        epochMillis(row.CreatedAt),
	}
}

// decodeStoredList expands a media column into an array. Columns hold
// either a JSON array literal or a single bare URL; malformed JSON is
// treated as a bare value rather than dropped.
func decodeStoredList(stored string) []string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return []string{}
	}

	if strings.HasPrefix(stored, "[") {
		var list []string
		if err := json.Unmarshal([]byte(stored), &list); err == nil {
			return list
		}
	}

	return []string{stored}
}
