package ranking

import (
	"testing"
	"time"

	"meigu/internal/models"
)

func localMillis(y int, m time.Month, d, hh, mm int) int64 {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local).UnixMilli()
}

func TestParseDate_LocaleStyles(t *testing.T) {
	want := localMillis(2025, time.October, 20, 0, 0)

	cases := []string{
		"2025年10月20日",
		"2025-10-20",
		"2025/10/20",
		"2025.10.20",
		" 2025-10-20 ",
	}

	for _, c := range cases {
		if got := ParseDate(c); got != want {
			t.Errorf("ParseDate(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	cases := []string{"not a date", "", "2024年4月15-17日", "待定"}

	for _, c := range cases {
		if got := ParseDate(c); got != 0 {
			t.Errorf("ParseDate(%q) = %d, want 0", c, got)
		}
	}
}

func TestToTimestamp_CombinesStartTime(t *testing.T) {
	got := ToTimestamp("2025年10月20日", "14:30-16:00")
	want := localMillis(2025, time.October, 20, 14, 30)

	if got != want {
		t.Errorf("ToTimestamp = %d, want %d", got, want)
	}
}

func TestToTimestamp_NoExtractableTime(t *testing.T) {
	want := localMillis(2025, time.October, 20, 0, 0)

	if got := ToTimestamp("2025-10-20", "全天"); got != want {
		t.Errorf("ToTimestamp with unextractable time = %d, want date only %d", got, want)
	}

	if got := ToTimestamp("2025-10-20", ""); got != want {
		t.Errorf("ToTimestamp without time = %d, want %d", got, want)
	}
}

func TestToTimestamp_UnparseableDate(t *testing.T) {
	if got := ToTimestamp("not a date", "14:30"); got != 0 {
		t.Errorf("ToTimestamp = %d, want 0", got)
	}
}

func TestSortActivities_MostRecentFirst(t *testing.T) {
	items := []models.Activity{
		{Title: "old", Date: "2025-01-01"},
		{Title: "new", Date: "2025-10-20"},
		{Title: "mid", Date: "2025-06-15"},
	}

	SortActivities(items)

	if items[0].Title != "new" || items[1].Title != "mid" || items[2].Title != "old" {
		t.Errorf("order = %s, %s, %s", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestSortActivities_SameDayCreatedAtTie(t *testing.T) {
	// B was logged earlier than A, so B is considered to have occurred
	// earlier and is placed first among same-day events.
	items := []models.Activity{
		{Title: "A", Date: "2025-10-20", CreatedAt: 100},
		{Title: "B", Date: "2025-10-20", CreatedAt: 50},
	}

	SortActivities(items)

	if items[0].Title != "B" || items[1].Title != "A" {
		t.Errorf("order = %s, %s; want B, A", items[0].Title, items[1].Title)
	}
}

func TestSortActivities_StartTimeBreaksSameDay(t *testing.T) {
	items := []models.Activity{
		{Title: "morning", Date: "2025-10-20", Time: "09:00-12:00"},
		{Title: "afternoon", Date: "2025-10-20", Time: "14:00-16:00"},
	}

	SortActivities(items)

	if items[0].Title != "afternoon" {
		t.Errorf("first = %s, want afternoon", items[0].Title)
	}
}

func TestSortActivities_UnparseableSortsLastStably(t *testing.T) {
	items := []models.Activity{
		{Title: "bad1", Date: "待定"},
		{Title: "good", Date: "2025-01-01"},
		{Title: "bad2", Date: "???"},
	}

	SortActivities(items)

	if items[0].Title != "good" {
		t.Errorf("first = %s, want good", items[0].Title)
	}

	// Zero-timestamp records keep their relative input order.
	if items[1].Title != "bad1" || items[2].Title != "bad2" {
		t.Errorf("tail = %s, %s; want bad1, bad2", items[1].Title, items[2].Title)
	}
}

func TestSortArticles_DateOnly(t *testing.T) {
	items := []models.Article{
		{Title: "older", Date: "2024年3月12日"},
		{Title: "newer", Date: "2024年3月18日"},
	}

	SortArticles(items)

	if items[0].Title != "newer" {
		t.Errorf("first = %s, want newer", items[0].Title)
	}
}
