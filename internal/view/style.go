package view

import "github.com/gdamore/tcell/v2"

// Styles holds the styles of each part of the view.
type Styles struct {
	Header   tcell.Style
	Columns  tcell.Style
	Row      tcell.Style
	Selected tcell.Style
	Status   tcell.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Header:   base.Bold(true).Reverse(true),
		Columns:  base.Bold(true).Underline(true),
		Row:      base,
		Selected: base.Reverse(true),
		Status:   base.Foreground(tcell.ColorYellow),
	}
}

// WithStyles replaces the styles.
func WithStyles(s Styles) Option {
	return func(v *View) {
		v.styles = s
	}
}
