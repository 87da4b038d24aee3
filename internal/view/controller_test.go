package view

import (
	"testing"

	"meigu/internal/listing"
	"meigu/internal/models"
)

func sampleActivities(n int) []models.Activity {
	acts := make([]models.Activity, 0, n)

	for i := 0; i < n; i++ {
		acts = append(acts, models.Activity{
			ID:        int64(i + 1),
			Title:     "活动" + string(rune('A'+i)),
			Date:      "2025-01-01",
			Content:   "内容",
			CreatedAt: int64(i),
		})
	}

	return acts
}

func TestController_SetCategoryResetsPage(t *testing.T) {
	c := NewController(listing.Visibility{}, 2)
	c.SetRecords(sampleActivities(5), nil)
	c.GoToPage(3)

	c.SetCategory("合作活动")

	if c.Page() != 1 {
		t.Errorf("page = %d, want 1 after category change", c.Page())
	}
}

func TestController_SetSearchResetsPage(t *testing.T) {
	c := NewController(listing.Visibility{}, 2)
	c.SetRecords(sampleActivities(5), nil)
	c.GoToPage(2)

	c.SetSearch("论坛")

	if c.Page() != 1 {
		t.Errorf("page = %d, want 1 after search change", c.Page())
	}
}

func TestController_GoToPageUsesHeldRecords(t *testing.T) {
	c := NewController(listing.Visibility{}, 2)
	c.SetRecords(sampleActivities(5), nil)

	c.GoToPage(2)
	page := c.ActivitiesPage(NewRenderContext())

	if page.Page != 2 {
		t.Errorf("page = %d, want 2", page.Page)
	}

	if len(page.Cards) != 2 {
		t.Errorf("cards = %d, want 2", len(page.Cards))
	}

	if page.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", page.TotalPages)
	}
}

func TestController_OutOfRangePageClamped(t *testing.T) {
	c := NewController(listing.Visibility{}, 2)
	c.SetRecords(sampleActivities(5), nil)

	c.GoToPage(99)
	page := c.ActivitiesPage(NewRenderContext())

	if page.Page != 3 {
		t.Errorf("page = %d, want clamped to 3", page.Page)
	}

	if c.Page() != 3 {
		t.Errorf("controller page = %d, want 3 after clamp", c.Page())
	}
}

func TestController_EmptyStateFlag(t *testing.T) {
	c := NewController(listing.Visibility{}, 10)
	c.SetRecords(nil, nil)

	page := c.ActivitiesPage(NewRenderContext())

	if !page.Empty {
		t.Error("expected empty flag on zero records")
	}

	if page.Cards == nil {
		t.Error("cards must be an empty slice, not nil")
	}
}

func TestController_SetRecordsReplaces(t *testing.T) {
	c := NewController(listing.Visibility{}, 10)
	c.SetRecords(sampleActivities(5), nil)
	c.SetRecords(sampleActivities(2), nil)

	page := c.ActivitiesPage(NewRenderContext())

	if page.Total != 2 {
		t.Errorf("total = %d, want 2 after replacement", page.Total)
	}
}

func TestController_HomeTeaserSizes(t *testing.T) {
	arts := []models.Article{
		{Title: "a1", Date: "2025-01-01"},
		{Title: "a2", Date: "2025-01-02"},
		{Title: "a3", Date: "2025-01-03"},
		{Title: "a4", Date: "2025-01-04"},
		{Title: "a5", Date: "2025-01-05"},
		{Title: "a6", Date: "2025-01-06"},
		{Title: "a7", Date: "2025-01-07"},
	}

	c := NewController(listing.Visibility{}, 10)
	c.SetRecords(sampleActivities(5), arts)

	home := c.Home(NewRenderContext())

	if len(home.Activities) != listing.HomeActivitySize {
		t.Errorf("activity teasers = %d, want %d", len(home.Activities), listing.HomeActivitySize)
	}

	if len(home.Articles) != listing.HomeArticleSize {
		t.Errorf("article teasers = %d, want %d", len(home.Articles), listing.HomeArticleSize)
	}

	if home.Articles[0].Title != "a7" {
		t.Errorf("newest article first, got %q", home.Articles[0].Title)
	}
}

func TestBuildActivityCard_Defaults(t *testing.T) {
	rc := NewRenderContext()
	card := buildActivityCard(models.Activity{Title: "年度发布会"}, rc)

	if card.Badge != "新品发布" {
		t.Errorf("badge = %q, want 新品发布", card.Badge)
	}

	if card.Location != defaultLocation {
		t.Errorf("location = %q, want default", card.Location)
	}

	if card.HasImage {
		t.Error("no media expected")
	}
}

func TestBuildActivityCard_CoverGoesToRenderContext(t *testing.T) {
	rc := NewRenderContext()
	act := models.Activity{ID: 7, Title: "展会", CoverImage: "cover.jpg"}

	card := buildActivityCard(act, rc)

	if !card.HasImage || card.MediaKey != "7" {
		t.Fatalf("card = %+v, want media key 7", card)
	}

	src, ok := rc.Media("7")
	if !ok || src != "cover.jpg" {
		t.Errorf("media = %q ok=%v", src, ok)
	}
}

func TestCoverSource_BareBase64GetsPrefix(t *testing.T) {
	got := coverSource("iVBORw0KGgo")

	if got != "data:image/png;base64,iVBORw0KGgo" {
		t.Errorf("got %q", got)
	}

	if coverSource("data:image/jpeg;base64,xyz") != "data:image/jpeg;base64,xyz" {
		t.Error("data URI must pass through unchanged")
	}

	if coverSource("/uploads/a.jpg") != "/uploads/a.jpg" {
		t.Error("path must pass through unchanged")
	}

	// Bare file names are not base64 payloads.
	if coverSource("cover.jpg") != "cover.jpg" {
		t.Error("file name must pass through unchanged")
	}
}
