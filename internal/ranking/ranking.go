// Package ranking computes sortable timestamps from loosely formatted
// date and time strings and orders record collections by them.
package ranking

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"meigu/internal/models"
)

// Historical rows mix locale punctuation styles: 2025年10月20日,
// 2025.10.20, 2025/10/20 and 2025-10-20 all appear.
var dateSeparators = strings.NewReplacer("年", "-", ".", "-", "/", "-", "月", "-", "日", "")

// timePattern extracts the first HH:MM start time from free-form time
// text such as "14:30-16:00" or "下午 14:30 开始".
var timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

var dateLayouts = []string{"2006-1-2", "2006-01-02"}

// ParseDate parses a free-form date string into epoch milliseconds
// (local midnight). Unparseable input yields 0, never an error: such
// records must sort last, not crash the pipeline.
func ParseDate(s string) int64 {
	day, ok := parseDay(s)
	if !ok {
		return 0
	}

	return day.UnixMilli()
}

// ToTimestamp combines a date string with an optional free-form time
// string into the composite timestamp that drives most-recent-first
// ordering. Hours and minutes default to 0 when no HH:MM can be found.
func ToTimestamp(dateText, timeText string) int64 {
	day, ok := parseDay(dateText)
	if !ok {
		return 0
	}

	if timeText == "" {
		return day.UnixMilli()
	}

	m := timePattern.FindStringSubmatch(timeText)
	if m == nil {
		return day.UnixMilli()
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local).UnixMilli()
}

func parseDay(s string) (time.Time, bool) {
	norm := strings.TrimSpace(dateSeparators.Replace(strings.TrimSpace(s)))
	if norm == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, norm, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// SortActivities orders activities most recent first by date plus start
// time. Ties on the same timestamp are broken by ascending createdAt
// (the record logged earlier is considered to have occurred earlier),
// and the sort is stable so equal keys keep their input order.
func SortActivities(items []models.Activity) {
	sort.SliceStable(items, func(i, j int) bool {
		ti := ToTimestamp(items[i].Date, items[i].Time)
		tj := ToTimestamp(items[j].Date, items[j].Time)

		if ti != tj {
			return ti > tj
		}

		return items[i].CreatedAt < items[j].CreatedAt
	})
}

// SortArticles orders articles most recent first by date only.
func SortArticles(items []models.Article) {
	sort.SliceStable(items, func(i, j int) bool {
		ti := ParseDate(items[i].Date)
		tj := ParseDate(items[j].Date)

		if ti != tj {
			return ti > tj
		}

		return items[i].CreatedAt < items[j].CreatedAt
	})
}
