package app

import (
	"calcgrid/config"
	"calcgrid/inspect"
	"calcgrid/keys"
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownKey is returned by Evaluate for input that is not bound to a key.
var ErrUnknownKey = errors.New("unknown key")

// Evaluate runs the key presses in args against a fresh calculator and
// returns the displayed value. Each argument is either a named key such as
// "enter" or "esc", or a run of single character keys like "12+5=".
// Evaluation stops at the first failing key.
func Evaluate(cfg *config.Config, args ...string) (string, error) {
	m, err := newHome(context.Background(), cfg)
	if err != nil {
		return "", err
	}
	for _, msg := range keyMsgs(args) {
		name, ok := keys.GlobalKeyStringsMap[msg.String()]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownKey, msg.String())
		}
		switch name {
		case keys.KeyQuit, keys.KeyHelp, keys.KeyCopy:
			continue
		}
		m.press(name)
		if err := m.errBox.Err(); err != nil {
			return m.engine.String(), fmt.Errorf("key %q: %w", msg.String(), err)
		}
	}
	return m.engine.String(), nil
}

// keyMsgs turns command line arguments into the key messages a terminal
// would deliver for them.
func keyMsgs(args []string) []tea.KeyMsg {
	var msgs []tea.KeyMsg
	for _, arg := range args {
		if k, ok := namedKeys[arg]; ok {
			msgs = append(msgs, tea.KeyMsg{Type: k})
			continue
		}
		for _, r := range arg {
			if r == ' ' {
				continue
			}
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return msgs
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
}

// LayoutSnapshot lays the keypad out for a width by height terminal and
// describes the result.
func LayoutSnapshot(cfg *config.Config, width, height int) (*inspect.Snapshot, error) {
	m, err := newHome(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	m.updateHandleWindowSizeEvent(tea.WindowSizeMsg{Width: width, Height: height})
	return m.Snapshot(), nil
}
