// Package normalizer reconciles the inconsistent historical shapes of
// stored article and news records into the canonical models. Normalization
// is pure and total: missing or malformed fields degrade to empty values,
// never to an error.
package normalizer

import (
	"strconv"
	"strings"

	"meigu/internal/models"
)

// Variant selects which audience a record is being normalized for. Both
// variants parse every field, including the event fee; the public render
// layer is responsible for suppressing fee display.
type Variant int

// Normalization variants.
const (
	Public Variant = iota
	Admin
)

// ShowFee reports whether this variant may display the event fee.
// The fee is operationally sensitive: admin pages always show it when
// non-empty, public pages never do.
func (v Variant) ShowFee() bool {
	return v == Admin
}

const videoDataURIPrefix = "data:video/"

// Normalizer converts raw records into canonical ones.
type Normalizer struct {
	variant Variant
}

// New creates a normalizer for the given variant.
func New(variant Variant) *Normalizer {
	return &Normalizer{variant: variant}
}

// Variant returns the audience this normalizer was built for.
func (n *Normalizer) Variant() Variant {
	return n.variant
}

// Activity normalizes one raw news record.
func (n *Normalizer) Activity(raw models.RawActivity) models.Activity {
	cover := raw.CoverImage
	if cover == "" {
		cover = raw.CoverImageLegacy
	}

	purpose := raw.Purpose
	if purpose == "" {
		purpose = raw.EventGoal
	}

	images := decodeImages(raw.Image, cover)
	videos, _ := DecodeListField(raw.Video)

	participants, participantsNote := decodePeople(raw.ParticipantsList, raw.Participants)
	staff, _ := decodePeople(raw.StaffList, raw.Staff)

	return models.Activity{
		ID:               coerceID(raw.ID),
		Title:            raw.Title,
		Subtitle:         raw.Subtitle,
		Date:             raw.Date,
		Time:             raw.Time,
		Location:         raw.Location,
		Organizer:        raw.Organizer,
		CoOrganizer:      raw.CoOrganizer,
		Sponsor:          raw.Sponsor,
		Purpose:          purpose,
		Content:          raw.Content,
		CoreFunction:     raw.CoreFunction,
		Highlights:       raw.Highlights,
		Participants:     participants,
		Staff:            staff,
		Images:           images,
		Videos:           videos,
		CoverImage:       cover,
		ParticipantsNote: participantsNote,
		EventScale:       raw.EventScale,
		EventFee:         raw.EventFee,
		ContactPhone:     raw.ContactPhone,
		RegistrationLink: raw.RegistrationLink,
		OfficialWebsite:  raw.OfficialWebsite,
		Category:         raw.Category,
		CreatedAt:        raw.CreatedAt,
	}
}

// Activities normalizes a batch, dropping records without a title. The
// relative order of the kept records is preserved.
func (n *Normalizer) Activities(raws []models.RawActivity) []models.Activity {
	out := make([]models.Activity, 0, len(raws))

	for _, raw := range raws {
		if strings.TrimSpace(raw.Title) == "" {
			continue
		}

		out = append(out, n.Activity(raw))
	}

	return out
}

// Article normalizes one raw article record.
func (n *Normalizer) Article(raw models.RawArticle) models.Article {
	author := raw.Author
	if author == "" {
		author = models.DefaultAuthor
	}

	return models.Article{
		ID:        coerceID(raw.ID),
		Title:     raw.Title,
		Content:   raw.Content,
		Link:      raw.Link,
		Category:  raw.Category,
		Date:      raw.Date,
		Author:    author,
		CreatedAt: raw.CreatedAt,
	}
}

// Articles normalizes a batch, dropping records without a title.
func (n *Normalizer) Articles(raws []models.RawArticle) []models.Article {
	out := make([]models.Article, 0, len(raws))

	for _, raw := range raws {
		if strings.TrimSpace(raw.Title) == "" {
			continue
		}

		out = append(out, n.Article(raw))
	}

	return out
}

// decodeImages materializes the image field and enforces two invariants:
// the gallery never contains a video data-URI, and the cover image never
// appears inside the gallery (it renders separately as the hero).
func decodeImages(raw any, cover string) []string {
	list, _ := DecodeListField(raw)
	out := make([]string, 0, len(list))

	for _, img := range list {
		if strings.HasPrefix(img, videoDataURIPrefix) {
			continue
		}

		if cover != "" && img == cover {
			continue
		}

		out = append(out, img)
	}

	return out
}

// decodePeople resolves a participants/staff pair: the explicit pre-parsed
// list field wins; otherwise the legacy field is decoded (newline-joined
// text splits into entries). A bare scalar in the legacy field is usually a
// head-count note ("500-800人"), so it is also preserved verbatim for the
// detail view alongside the decoded list.
func decodePeople(explicit, legacy any) ([]string, string) {
	note := scalarNote(legacy)

	if list, ok := decodeExplicitList(explicit); ok {
		return list, note
	}

	list, _ := DecodeListField(legacy)

	return list, note
}

func scalarNote(raw any) string {
	if s, ok := raw.(string); ok && !strings.HasPrefix(s, "[") && !strings.Contains(s, "\n") {
		return s
	}

	return ""
}

// coerceID accepts the id as emitted by the API: a JSON number, a numeric
// string, or absent. Anything else yields 0 and the record falls back to
// its synthetic title key.
func coerceID(raw any) int64 {
	switch v := raw.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}

		return id
	default:
		return 0
	}
}
