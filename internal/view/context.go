// Package view builds the page view-models rendered by the page shell:
// activity cards, article items, detail pages and their pagination
// metadata, parameterized by an audience visibility capability.
package view

import "strings"

// RenderContext carries per-render state, most importantly the media
// side table that keeps large encoded images out of the generated
// markup. It lives for exactly one render pass and is discarded with
// it; it is never shared across renders.
type RenderContext struct {
	MediaByID map[string]string
}

// NewRenderContext creates an empty context for one render pass.
func NewRenderContext() *RenderContext {
	return &RenderContext{MediaByID: make(map[string]string)}
}

// PutMedia stores the cover source for a record key.
func (rc *RenderContext) PutMedia(key, src string) {
	rc.MediaByID[key] = src
}

// Media looks up the cover source for a record key.
func (rc *RenderContext) Media(key string) (string, bool) {
	src, ok := rc.MediaByID[key]

	return src, ok
}

// coverSource normalizes a stored cover value into a usable image
// source. Legacy rows stored bare base64 without a data-URI prefix; a
// base64 payload never contains a dot, while file names and URLs do.
func coverSource(url string) string {
	if url == "" || strings.HasPrefix(url, "data:") || strings.Contains(url, ".") {
		return url
	}

	return "data:image/png;base64," + url
}
