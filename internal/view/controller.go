package view

import (
	"meigu/internal/listing"
	"meigu/internal/models"
	"meigu/internal/ranking"
)

// ActivityPage is one rendered page of the activity listing.
type ActivityPage struct {
	Cards      []ActivityCard
	Page       int
	TotalPages int
	Total      int
	Window     listing.Window
	Empty      bool
}

// ArticlePage is one rendered page of the article listing.
type ArticlePage struct {
	Items      []ArticleItem
	Page       int
	TotalPages int
	Total      int
	Window     listing.Window
	Empty      bool
}

// HomeView holds the home page teasers: the most recent activities and
// articles, capped at their fixed teaser sizes.
type HomeView struct {
	Activities []ActivityCard
	Articles   []ArticleItem
}

// Controller owns the listing state of one page: the fetched canonical
// records plus the current category, search term and page number. Page
// navigation re-runs the pipeline over the records already in hand;
// only an external change notification triggers a refetch.
type Controller struct {
	visibility listing.Visibility
	pageSize   int

	activities []models.Activity
	articles   []models.Article

	category string
	search   string
	page     int
}

// NewController creates a controller with the given audience capability
// and listing page size.
func NewController(visibility listing.Visibility, pageSize int) *Controller {
	return &Controller{
		visibility: visibility,
		pageSize:   pageSize,
		category:   listing.CategoryAll,
		page:       1,
	}
}

// SetRecords replaces the held records after a fetch. The view state
// (filter, search, page) is kept; the previous render's data is fully
// replaced, never merged.
func (c *Controller) SetRecords(activities []models.Activity, articles []models.Article) {
	c.activities = activities
	c.articles = articles
}

// SetCategory changes the category filter and resets to page 1.
func (c *Controller) SetCategory(category string) {
	c.category = category
	c.page = 1
}

// SetSearch changes the search term and resets to page 1.
func (c *Controller) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// GoToPage navigates to page n. Out-of-range values are clamped by the
// pagination step, not rejected.
func (c *Controller) GoToPage(n int) {
	c.page = n
}

// Page returns the current page number.
func (c *Controller) Page() int {
	return c.page
}

// ActivitiesPage runs filter -> sort -> paginate over the held
// activities and builds the card views for the current page.
func (c *Controller) ActivitiesPage(rc *RenderContext) ActivityPage {
	filtered := listing.FilterActivities(c.activities, c.category, c.search)
	ranking.SortActivities(filtered)

	page := listing.Paginate(filtered, c.page, c.pageSize)
	c.page = page.Page

	cards := make([]ActivityCard, 0, len(page.Items))
	for _, act := range page.Items {
		cards = append(cards, buildActivityCard(act, rc))
	}

	return ActivityPage{
		Cards:      cards,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Window:     listing.PageWindow(page.Page, page.TotalPages),
		Empty:      page.Total == 0,
	}
}

// ArticlesPage is the article counterpart of ActivitiesPage.
func (c *Controller) ArticlesPage() ArticlePage {
	filtered := listing.FilterArticles(c.articles, c.category, c.search)
	ranking.SortArticles(filtered)

	page := listing.Paginate(filtered, c.page, c.pageSize)
	c.page = page.Page

	items := make([]ArticleItem, 0, len(page.Items))
	for _, art := range page.Items {
		items = append(items, buildArticleItem(art))
	}

	return ArticlePage{
		Items:      items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Window:     listing.PageWindow(page.Page, page.TotalPages),
		Empty:      page.Total == 0,
	}
}

// Home builds the home page teasers: the newest activities and
// articles at their fixed teaser sizes, ignoring the listing page
// state. The article teaser honors the current category filter (the
// home page has category tabs); the activity teaser does not.
func (c *Controller) Home(rc *RenderContext) HomeView {
	activities := append([]models.Activity{}, c.activities...)
	ranking.SortActivities(activities)

	actPage := listing.Paginate(activities, 1, listing.HomeActivitySize)

	cards := make([]ActivityCard, 0, len(actPage.Items))
	for _, act := range actPage.Items {
		cards = append(cards, buildActivityCard(act, rc))
	}

	articles := listing.FilterArticles(c.articles, c.category, "")
	ranking.SortArticles(articles)

	artPage := listing.Paginate(articles, 1, listing.HomeArticleSize)

	items := make([]ArticleItem, 0, len(artPage.Items))
	for _, art := range artPage.Items {
		items = append(items, buildArticleItem(art))
	}

	return HomeView{Activities: cards, Articles: items}
}
