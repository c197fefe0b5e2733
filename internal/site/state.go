package site

import "time"

// SplashDuration is how long the home page splash stays up
const SplashDuration = 3500 * time.Millisecond

// Toggle is the open/closed state owned by a single view: the mobile menu,
// the floating contact bubble, the filter panel or a modal. Closed at zero.
type Toggle struct {
	open bool
}

func (t *Toggle) Open()        { t.open = true }
func (t *Toggle) Close()       { t.open = false }
func (t *Toggle) Flip()        { t.open = !t.open }
func (t *Toggle) IsOpen() bool { return t.open }

// HandleKey closes the toggle on Escape, as modals do
func (t *Toggle) HandleKey(key string) {
	if key == "Escape" {
		t.open = false
	}
}

// Splash tracks the home page intro shown once per visit
type Splash struct {
	shownAt time.Time
}

func NewSplash(now time.Time) Splash {
	return Splash{shownAt: now}
}

// Visible reports whether the splash still covers the page at now
func (s Splash) Visible(now time.Time) bool {
	return now.Before(s.shownAt.Add(SplashDuration))
}

var modalWidths = map[Size]string{
	SizeSmall:  "max-w-md",
	SizeMedium: "max-w-2xl",
	SizeLarge:  "max-w-4xl",
	SizeXL:     "max-w-6xl",
}

// ModalWidth returns the width class of a modal, md when size is unknown
func ModalWidth(size Size) string {
	if w, ok := modalWidths[size]; ok {
		return w
	}
	return modalWidths[SizeMedium]
}
