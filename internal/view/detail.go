package view

import (
	"meigu/internal/media"
	"meigu/internal/models"
)

// Placeholder shown for core detail fields that are still unset.
const pendingText = "待定"

// InfoCard is one labeled block in the detail page info grid.
type InfoCard struct {
	Label string
	Value string
}

// DetailView is the view-model of an activity detail page. Gallery and
// Viewer drive the media section; Found=false renders the not-found
// view instead.
type DetailView struct {
	Found            bool
	Title            string
	Subtitle         string
	DateText         string
	Location         string
	Organizer        string
	Purpose          string
	Content          string
	InfoCards        []InfoCard
	Participants     []string
	Staff            []string
	ParticipantsNote string
	ContactPhone     string
	RegistrationLink string
	OfficialWebsite  string
	Gallery          media.Gallery
	Viewer           *media.Lightbox
}

// NotFoundTitle is the heading of the not-found view.
const NotFoundTitle = "活动未找到"

// ActivityDetail resolves a detail request against the held activities.
// The key matches the numeric id when byID is true, otherwise the
// title (the synthetic key for legacy rows without an id). A miss
// yields a not-found view, never an error.
func (c *Controller) ActivityDetail(key string, byID bool) DetailView {
	for i := range c.activities {
		act := &c.activities[i]

		var matched bool
		if byID {
			matched = act.ID != 0 && act.Key() == key
		} else {
			matched = act.Title == key
		}

		if matched {
			return c.buildDetail(*act)
		}
	}

	return DetailView{Found: false, Title: NotFoundTitle}
}

func (c *Controller) buildDetail(act models.Activity) DetailView {
	gallery := media.ResolveGallery(act)

	d := DetailView{
		Found:            true,
		Title:            act.Title,
		Subtitle:         act.Subtitle,
		DateText:         orPending(act.Date),
		Location:         orPending(act.Location),
		Organizer:        orPending(act.Organizer),
		Purpose:          act.Purpose,
		Content:          act.Content,
		Participants:     act.Participants,
		Staff:            act.Staff,
		ParticipantsNote: act.ParticipantsNote,
		ContactPhone:     act.ContactPhone,
		RegistrationLink: act.RegistrationLink,
		OfficialWebsite:  act.OfficialWebsite,
		Gallery:          gallery,
		Viewer:           media.NewLightbox(len(gallery.Images())),
	}

	d.InfoCards = c.buildInfoCards(act)

	return d
}

// buildInfoCards assembles the optional info blocks. The event fee is
// operationally sensitive: it only appears for audiences whose
// capability allows it, and only when non-empty.
func (c *Controller) buildInfoCards(act models.Activity) []InfoCard {
	var cards []InfoCard

	add := func(label, value string) {
		if value != "" {
			cards = append(cards, InfoCard{Label: label, Value: value})
		}
	}

	add("核心功能", act.CoreFunction)
	add("活动亮点", act.Highlights)
	add("联合组织者", act.CoOrganizer)
	add("活动规模", act.EventScale)

	if c.visibility.ShowFee {
		add("活动费用", act.EventFee)
	}

	return cards
}

func orPending(s string) string {
	if s == "" {
		return pendingText
	}

	return s
}
