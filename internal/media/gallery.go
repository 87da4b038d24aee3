// Package media derives the ordered gallery for a record and drives the
// image viewer state machine.
package media

import "meigu/internal/models"

// Kind distinguishes gallery media. Images open in the viewer; videos
// render inline.
type Kind int

// Media kinds.
const (
	KindImage Kind = iota
	KindVideo
)

// Media is one gallery entry.
type Media struct {
	URL  string
	Kind Kind
}

// Gallery is the resolved media set of a record: the hero cover (empty
// when the record has none) plus the ordered gallery items, images first
// then videos.
type Gallery struct {
	Cover string
	Items []Media
}

// Images returns the URLs of the image subset, in gallery order. This is
// the list the viewer cycles over.
func (g Gallery) Images() []string {
	out := make([]string, 0, len(g.Items))

	for _, m := range g.Items {
		if m.Kind == KindImage {
			out = append(out, m.URL)
		}
	}

	return out
}

// ResolveGallery builds the gallery for an activity. When the cover image
// is non-empty, every gallery image equal to it is removed so the same
// asset never renders twice, once as hero and once in the grid. Images
// and videos are different kinds and are never de-duplicated against
// each other.
func ResolveGallery(act models.Activity) Gallery {
	g := Gallery{Cover: act.CoverImage}

	for _, img := range act.Images {
		if g.Cover != "" && img == g.Cover {
			continue
		}

		g.Items = append(g.Items, Media{URL: img, Kind: KindImage})
	}

	for _, vid := range act.Videos {
		g.Items = append(g.Items, Media{URL: vid, Kind: KindVideo})
	}

	return g
}
