package listing

// maxPageButtons caps how many numbered page buttons the pagination
// control shows at once.
const maxPageButtons = 8

// Window describes which numbered page buttons to render: the inclusive
// [Start, End] range centered on the current page, plus whether the
// first/last page shortcuts and their ellipsis gaps are needed.
type Window struct {
	Start            int
	End              int
	ShowFirst        bool
	ShowLast         bool
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// PageWindow computes the button window for a pagination control with
// totalPages pages and the given current page. With maxPageButtons or
// fewer pages every button is shown.
func PageWindow(current, totalPages int) Window {
	start, end := 1, totalPages

	if totalPages > maxPageButtons {
		half := maxPageButtons / 2

		start = current - half
		if start < 1 {
			start = 1
		}

		end = start + maxPageButtons - 1
		if end > totalPages {
			end = totalPages
		}

		if end-start < maxPageButtons-1 {
			start = end - maxPageButtons + 1
			if start < 1 {
				start = 1
			}
		}
	}

	return Window{
		Start:            start,
		End:              end,
		ShowFirst:        start > 1,
		ShowLast:         end < totalPages,
		LeadingEllipsis:  start > 2,
		TrailingEllipsis: end < totalPages-1,
	}
}
