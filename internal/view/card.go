package view

import (
	"strings"

	"meigu/internal/models"
	"meigu/pkg/text"
)

// Display defaults for cards with missing fields.
const (
	defaultBadge    = "新闻"
	defaultLocation = "韩国中心"
	excerptWidth    = 100
)

// ActivityCard is the view-model for one activity card in a grid. The
// cover source itself lives in the RenderContext media table, keyed by
// MediaKey, so the card markup stays small.
type ActivityCard struct {
	Key      string
	Title    string
	Badge    string
	Location string
	DateText string
	Excerpt  string
	HasImage bool
	MediaKey string
	LinkByID bool
}

// ArticleItem is the view-model for one article row in a listing.
type ArticleItem struct {
	Title    string
	Excerpt  string
	Category string
	DateText string
	Link     string
	External bool
}

func buildActivityCard(act models.Activity, rc *RenderContext) ActivityCard {
	card := ActivityCard{
		Key:      act.Key(),
		Title:    act.Title,
		Badge:    activityBadge(act),
		Location: act.Location,
		DateText: act.Date,
		Excerpt:  text.Excerpt(act.Content, excerptWidth),
		LinkByID: act.ID != 0,
	}

	if card.Location == "" {
		card.Location = defaultLocation
	}

	if act.Time != "" && act.Date != "" {
		card.DateText = act.Date + " " + act.Time
	}

	if cover := cardCover(act); cover != "" {
		card.HasImage = true
		card.MediaKey = card.Key
		rc.PutMedia(card.MediaKey, coverSource(cover))
	}

	return card
}

func buildArticleItem(art models.Article) ArticleItem {
	return ArticleItem{
		Title:    art.Title,
		Excerpt:  text.Excerpt(art.Content, excerptWidth),
		Category: art.Category,
		DateText: art.Date,
		Link:     art.Link,
		External: art.Link != "",
	}
}

// cardCover picks the card image: the cover image when present,
// otherwise the first gallery image. Video data-URIs never serve as a
// card cover.
func cardCover(act models.Activity) string {
	if act.CoverImage != "" && !strings.HasPrefix(act.CoverImage, "data:video/") {
		return act.CoverImage
	}

	if len(act.Images) > 0 {
		return act.Images[0]
	}

	return ""
}

// activityBadge labels a card: the record category when set, otherwise
// a keyword heuristic over the title.
func activityBadge(act models.Activity) string {
	if act.Category != "" {
		return act.Category
	}

	title := act.Title

	switch {
	case strings.Contains(title, "博览会"), strings.Contains(title, "展览"):
		return "博览会"
	case strings.Contains(title, "研讨会"), strings.Contains(title, "论坛"):
		return "研讨会"
	case strings.Contains(title, "发布会"), strings.Contains(title, "新品"):
		return "新品发布"
	case strings.Contains(title, "合作"), strings.Contains(title, "签约"):
		return "合作活动"
	default:
		return defaultBadge
	}
}
