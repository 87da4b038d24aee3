// Package models defines the canonical record types shared by the
// normalizer, ranking, listing and view layers.
package models

import "strconv"

// Activity is the canonical form of a news/activity record after
// normalization. Every field is materialized: scalars default to the
// empty string and sequences to empty slices, never nil propagation.
type Activity struct {
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
	Participants     []string `json:"participants"`
	Staff            []string `json:"staff"`
	Images           []string `json:"images"`
	Videos           []string `json:"videos"`
	CoverImage       string   `json:"coverImage"`
	ParticipantsNote string   `json:"participantsNote"`
	EventScale       string   `json:"eventScale"`
	EventFee         string   `json:"eventFee"`
	ContactPhone     string   `json:"contactPhone"`
	RegistrationLink string   `json:"registrationLink"`
	OfficialWebsite  string   `json:"officialWebsite"`
	Category         string   `json:"category"`
	CreatedAt        int64    `json:"createdAt"`
}

// Key returns the identity used for detail links and media lookup:
// the numeric id when present, otherwise a synthetic title-based key.
func (a *Activity) Key() string {
	if a.ID != 0 {
		return strconv.FormatInt(a.ID, 10)
	}

	return a.Title
}
