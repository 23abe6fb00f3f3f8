package ui

import (
	"calcgrid/inspect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

// ErrBox shows the last error on a single line.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

// Err returns the error being shown, if any.
func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) message() string {
	if e.err == nil {
		return ""
	}
	msg := strings.Join(strings.Split(e.err.Error(), "\n"), "//")
	if runewidth.StringWidth(msg) > e.width-3 && e.width-3 >= 0 {
		msg = runewidth.Truncate(msg, e.width-3, "...")
	}
	return msg
}

func (e *ErrBox) String() string {
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, errStyle.Render(e.message()))
}

// InspectNode reports the error box for UI snapshots.
func (e *ErrBox) InspectNode() *inspect.Node {
	n := inspect.NewNode("ErrBox").
		WithBounds(0, 0, e.width, e.height).
		WithContent(e.message())
	n.Visible = e.err != nil
	return n
}
