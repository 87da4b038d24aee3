package media

// Key identifies a keyboard trigger for the viewer. The bindings carry
// the same semantics as the corresponding button actions and are only
// active while the viewer is open.
type Key string

// Recognized keys.
const (
	KeyEscape Key = "Escape"
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
)

// Lightbox is the modal image viewer: an index-cycling state machine
// over the image subset of a gallery. States are Closed and Open(index);
// Next and Previous wrap around both ends.
type Lightbox struct {
	size  int
	index int
	open  bool
}

// NewLightbox creates a closed viewer over size images.
func NewLightbox(size int) *Lightbox {
	return &Lightbox{size: size}
}

// Open transitions Closed -> Open(i). Out-of-range indexes and empty
// image lists are no-ops: an empty gallery never opens.
func (l *Lightbox) Open(i int) {
	if i < 0 || i >= l.size {
		return
	}

	l.index = i
	l.open = true
}

// Close returns to the Closed state from any Open state.
func (l *Lightbox) Close() {
	l.open = false
}

// Next advances to the following image, wrapping to the first past the
// last. No-op while closed.
func (l *Lightbox) Next() {
	if !l.open {
		return
	}

	l.index = (l.index + 1) % l.size
}

// Previous steps back to the preceding image, wrapping to the last
// before the first. No-op while closed.
func (l *Lightbox) Previous() {
	if !l.open {
		return
	}

	l.index = (l.index - 1 + l.size) % l.size
}

// HandleKey applies a keyboard trigger. Unknown keys are ignored.
func (l *Lightbox) HandleKey(k Key) {
	if !l.open {
		return
	}

	switch k {
	case KeyEscape:
		l.Close()
	case KeyLeft:
		l.Previous()
	case KeyRight:
		l.Next()
	}
}

// OutsideClick closes the viewer, same as the close button.
func (l *Lightbox) OutsideClick() {
	l.Close()
}

// Current returns the open image index, or false while closed.
func (l *Lightbox) Current() (int, bool) {
	if !l.open {
		return 0, false
	}

	return l.index, true
}
