package view

import "github.com/gdamore/tcell/v2"

// Action is the outcome of a key press.
type Action int

const (
	// ActionNone means the key was not bound.
	ActionNone Action = iota
	// ActionMove means the cursor moved and the view was redrawn.
	ActionMove
	// ActionReload asks the caller to reload the source.
	ActionReload
	// ActionQuit asks the caller to stop.
	ActionQuit
)

// HandleKey applies navigation keys and reports what the caller should do.
func (v *View) HandleKey(ev *tcell.EventKey) Action {
	_, height := v.screen.Size()
	page := max(height-3, 1)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return v.move(v.cursor - 1)
	case tcell.KeyDown:
		return v.move(v.cursor + 1)
	case tcell.KeyPgUp:
		return v.move(v.cursor - page)
	case tcell.KeyPgDn:
		return v.move(v.cursor + page)
	case tcell.KeyHome:
		return v.move(0)
	case tcell.KeyEnd:
		return v.move(len(v.rows) - 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'k':
			return v.move(v.cursor - 1)
		case 'j':
			return v.move(v.cursor + 1)
		case 'g':
			return v.move(0)
		case 'G':
			return v.move(len(v.rows) - 1)
		case 'r':
			return ActionReload
		}
	}
	return ActionNone
}

func (v *View) move(to int) Action {
	v.cursor = clamp(to, 0, len(v.rows)-1)
	v.Draw()
	return ActionMove
}
