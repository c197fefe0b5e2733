package site

import "strings"

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
	// modals only
	SizeXL Size = "xl"
)

type LogoTone string

const (
	LogoDark  LogoTone = "dark"
	LogoLight LogoTone = "light"
)

const buttonBase = "inline-flex items-center justify-center rounded-2xl transition-all duration-300 " +
	"disabled:opacity-50 disabled:cursor-not-allowed font-medium active:scale-95"

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "bg-primary text-primary-foreground hover:bg-primary/90 shadow-md hover:shadow-lg",
	ButtonSecondary: "bg-secondary text-secondary-foreground hover:bg-secondary/80 shadow-sm hover:shadow-md",
	ButtonOutline:   "border-2 border-border bg-white hover:bg-accent hover:border-primary",
	ButtonGhost:     "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizes = map[Size]string{
	SizeSmall:  "px-3 py-1.5 text-sm",
	SizeMedium: "px-5 py-2.5",
	SizeLarge:  "px-6 py-3 text-lg",
}

var logoSizes = map[Size]string{
	SizeSmall:  "text-xl",
	SizeMedium: "text-2xl",
	SizeLarge:  "text-4xl",
}

// ButtonStyle returns the class list of a button. Unknown variants fall back
// to primary and unknown sizes to md.
func ButtonStyle(variant ButtonVariant, size Size) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[ButtonPrimary]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes[SizeMedium]
	}
	return strings.Join([]string{buttonBase, v, s}, " ")
}

// LogoStyle is the rendering of the wordmark for one size and tone
type LogoStyle struct {
	Text   string `json:"text"`
	Size   string `json:"size"`
	Color  string `json:"color"`
	Circle string `json:"circle"`
}

// Logo resolves the wordmark style; defaults are md and dark
func Logo(size Size, tone LogoTone) LogoStyle {
	s, ok := logoSizes[size]
	if !ok {
		s = logoSizes[SizeMedium]
	}

	style := LogoStyle{
		Text:   "THE JOB SHOP",
		Size:   s,
		Color:  "text-[#111111]",
		Circle: "bg-[#111111]",
	}
	if tone == LogoLight {
		style.Color = "text-white"
		style.Circle = "bg-white"
	}
	return style
}

// Theme is the full set of presentation tokens served to the frontend
type Theme struct {
	Buttons map[ButtonVariant]map[Size]string `json:"buttons"`
	Logos   map[LogoTone]map[Size]LogoStyle   `json:"logos"`
	Modals  map[Size]string                   `json:"modals"`
	// ScrollToTop is the offset in pixels that reveals the control
	ScrollToTop int   `json:"scrollToTop"`
	SplashMs    int64 `json:"splashMs"`
}

// DefaultTheme expands every button and logo combination
func DefaultTheme() Theme {
	t := Theme{
		Buttons:     map[ButtonVariant]map[Size]string{},
		Logos:       map[LogoTone]map[Size]LogoStyle{},
		Modals:      map[Size]string{},
		ScrollToTop: ScrollToTopThreshold,
		SplashMs:    SplashDuration.Milliseconds(),
	}
	sizes := []Size{SizeSmall, SizeMedium, SizeLarge}

	for v := range buttonVariants {
		t.Buttons[v] = map[Size]string{}
		for _, s := range sizes {
			t.Buttons[v][s] = ButtonStyle(v, s)
		}
	}
	for s := range modalWidths {
		t.Modals[s] = ModalWidth(s)
	}
	for _, tone := range []LogoTone{LogoDark, LogoLight} {
		t.Logos[tone] = map[Size]LogoStyle{}
		for _, s := range sizes {
			t.Logos[tone][s] = Logo(s, tone)
		}
	}
	return t
}
