// Package view renders a record collection in a terminal with tcell and
// redraws it whenever the collection triggers change.
package view

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/event"
	"github.com/dshills/collections/internal/record"
)

// maxColumnWidth caps the width of a single column.
const maxColumnWidth = 32

// Source is the collection a View displays.
type Source = collection.Reader[*record.Record]

// Option configures a View.
type Option func(*View)

// WithTitle sets the header title.
func WithTitle(title string) Option {
	return func(v *View) {
		v.title = title
	}
}

// WithColumns sets the fields shown per row. Without it every field of
// the visible records is shown.
func WithColumns(columns ...string) Option {
	return func(v *View) {
		v.columns = slices.Clone(columns)
	}
}

// WithFilter hides the records m rejects.
func WithFilter(m collection.Matcher[*record.Record]) Option {
	return func(v *View) {
		v.filter = m
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// View draws a Source as a table: a header line, a column line, one row
// per visible record and a status line.
//
// View is driven from the goroutine that mutates the Source; it is not
// safe for concurrent use.
type View struct {
	screen tcell.Screen
	src    Source
	sub    *event.Subscriber
	logger *slog.Logger

	title   string
	columns []string
	filter  collection.Matcher[*record.Record]
	styles  Styles

	rows   []*record.Record
	cursor int
	offset int
	status string
	draws  int
}

// New creates a View of src on screen and subscribes it to src's events.
// The screen must already be initialized.
func New(screen tcell.Screen, src Source, opts ...Option) (*View, error) {
	v := &View{
		screen: screen,
		src:    src,
		sub:    event.NewSubscriber(src.Events()),
		logger: slog.New(slog.DiscardHandler),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := v.subscribe(); err != nil {
		v.sub.Close()
		return nil, fmt.Errorf("subscribing view: %w", err)
	}
	v.refresh()
	return v, nil
}

func (v *View) subscribe() error {
	if _, err := v.sub.SubscribeFunc(collection.TopicChange.String(), func(*event.Envelope) error {
		v.Draw()
		return nil
	}); err != nil {
		return err
	}

	_, err := event.SubscribeTyped[collection.Added[*record.Record]](v.sub, collection.TopicAdd.String(), func(e collection.Added[*record.Record], _ *event.Envelope) error {
		v.status = fmt.Sprintf("added %d", len(e.Items))
		return nil
	})
	if err != nil {
		return err
	}
	_, err = event.SubscribeTyped[collection.Removed[*record.Record]](v.sub, collection.TopicRemove.String(), func(e collection.Removed[*record.Record], _ *event.Envelope) error {
		if e.Clear {
			v.status = "cleared"
		} else {
			v.status = fmt.Sprintf("removed %d", len(e.Items))
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = event.SubscribeTyped[collection.Replaced[*record.Record]](v.sub, collection.TopicReplace.String(), func(e collection.Replaced[*record.Record], _ *event.Envelope) error {
		v.status = fmt.Sprintf("updated row %d", e.Index+1)
		return nil
	})
	return err
}

// Close detaches the view from its source.
func (v *View) Close() error {
	return v.sub.Close()
}

// SetStatus replaces the status line text and redraws.
func (v *View) SetStatus(format string, args ...any) {
	v.status = fmt.Sprintf(format, args...)
	v.Draw()
}

// Status returns the status line text.
func (v *View) Status() string {
	return v.status
}

// Rows returns the visible records in display order.
func (v *View) Rows() []*record.Record {
	return slices.Clone(v.rows)
}

// Selected returns the record under the cursor.
func (v *View) Selected() (*record.Record, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil, false
	}
	return v.rows[v.cursor], true
}

// Draws returns how many times the view has been drawn.
func (v *View) Draws() int {
	return v.draws
}

// refresh recomputes the visible rows and keeps the cursor in range.
func (v *View) refresh() {
	items := v.src.ToSlice()
	if v.filter != nil {
		items = slices.DeleteFunc(items, func(r *record.Record) bool {
			return !v.filter.Match(r)
		})
	}

	selected, hadSelection := v.Selected()
	v.rows = items
	if hadSelection {
		if i := slices.Index(v.rows, selected); i >= 0 {
			v.cursor = i
		}
	}
	v.cursor = clamp(v.cursor, 0, len(v.rows)-1)
}

// Draw redraws the whole screen.
func (v *View) Draw() {
	v.refresh()
	v.draws++

	v.screen.Clear()
	width, height := v.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	header := fmt.Sprintf(" %s  %d/%d", v.title, len(v.rows), v.src.Len())
	v.drawLine(0, header, v.styles.Header, width)

	columns := v.visibleColumns()
	widths := v.columnWidths(columns)
	v.drawLine(1, formatRow(columns, widths, func(c string) string { return c }), v.styles.Columns, width)

	body := height - 3
	if body < 0 {
		body = 0
	}
	v.scrollTo(body)

	for i := 0; i < body && v.offset+i < len(v.rows); i++ {
		idx := v.offset + i
		r := v.rows[idx]
		style := v.styles.Row
		if idx == v.cursor {
			style = v.styles.Selected
		}
		v.drawLine(2+i, formatRow(columns, widths, r.Text), style, width)
	}

	if height > 2 {
		v.drawLine(height-1, " "+v.status, v.styles.Status, width)
	}
	v.screen.Show()
	v.logger.Debug("view drawn", "rows", len(v.rows), "offset", v.offset, "cursor", v.cursor)
}

// scrollTo adjusts offset so the cursor is inside a body of the given height.
func (v *View) scrollTo(body int) {
	if body <= 0 {
		v.offset = 0
		return
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+body {
		v.offset = v.cursor - body + 1
	}
	v.offset = clamp(v.offset, 0, max(len(v.rows)-body, 0))
}

func (v *View) drawLine(y int, text string, style tcell.Style, width int) {
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (v *View) visibleColumns() []string {
	if len(v.columns) > 0 {
		return v.columns
	}
	var cols []string
	for _, r := range v.rows {
		for _, k := range r.Keys() {
			if !slices.Contains(cols, k) {
				cols = append(cols, k)
			}
		}
	}
	slices.Sort(cols)
	return cols
}

func (v *View) columnWidths(columns []string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len([]rune(c))
		for _, r := range v.rows {
			widths[i] = max(widths[i], len([]rune(r.Text(c))))
		}
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}

func formatRow(columns []string, widths []int, cell func(string) string) string {
	line := ""
	for i, c := range columns {
		text := []rune(cell(c))
		if len(text) > widths[i] {
			text = append(text[:widths[i]-1], '~')
		}
		line += " " + string(text)
		for pad := len(text); pad < widths[i]; pad++ {
			line += " "
		}
		line += " "
	}
	return line
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
