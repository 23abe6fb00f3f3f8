package app

import (
	"calcgrid/calc"
	"calcgrid/config"
	"calcgrid/inspect"
	"calcgrid/keys"
	"calcgrid/log"
	"calcgrid/ui"
	"calcgrid/ui/layout"
	"calcgrid/ui/overlay"
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows below the keypad.
const (
	menuHeight   = 1
	errBoxHeight = 1
)

// helpWidth caps the width of the help overlay.
const helpWidth = 72

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	m, err := newHome(ctx, cfg)
	if err != nil {
		return err
	}
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the key reference is displayed.
	stateHelp
)

func (s state) String() string {
	if s == stateHelp {
		return "help"
	}
	return "default"
}

type home struct {
	ctx context.Context

	appConfig *config.Config

	// -- State --

	state    state
	inverted bool
	engine   *calc.Engine

	width, height int

	// -- UI Components --

	display     *ui.Display
	keypad      *ui.Keypad
	menu        *ui.Menu
	errBox      *ui.ErrBox
	helpOverlay *overlay.HelpOverlay

	// errGen counts errors shown so a timer only hides its own error.
	errGen int

	// copyText puts text on the system clipboard.
	copyText func(string) error
}

func newHome(ctx context.Context, cfg *config.Config) (*home, error) {
	engine := calc.New()
	display := ui.NewDisplay()
	if err := engine.AddListener(display); err != nil {
		return nil, err
	}

	insets := layout.Insets{
		Top:    cfg.Insets.Top,
		Left:   cfg.Insets.Left,
		Bottom: cfg.Insets.Bottom,
		Right:  cfg.Insets.Right,
	}
	keypad, err := ui.NewKeypad(cfg.Gap, insets, display)
	if err != nil {
		return nil, fmt.Errorf("failed to build keypad: %w", err)
	}

	m := &home{
		ctx:         ctx,
		appConfig:   cfg,
		state:       stateDefault,
		engine:      engine,
		display:     display,
		keypad:      keypad,
		menu:        ui.NewMenu(),
		errBox:      ui.NewErrBox(),
		helpOverlay: overlay.NewHelpOverlay("calcgrid keys"),
		copyText:    clipboard.WriteAll,
	}
	m.setInverted(cfg.StartInverted)
	return m, nil
}

func (m *home) menuRows() int {
	if m.appConfig.ShowMenu {
		return menuHeight
	}
	return 0
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The keypad gets everything above the menu and the error box.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	keypadHeight := max(0, msg.Height-m.menuRows()-errBoxHeight)
	m.keypad.Resize(msg.Width, keypadHeight)
	m.menu.SetSize(msg.Width, m.menuRows())
	m.errBox.SetSize(int(float32(msg.Width)*0.9), errBoxHeight)
	m.helpOverlay.SetWidth(min(msg.Width, helpWidth))
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.writeSnapshot()
	return model, cmd
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		if msg.gen == m.errGen {
			m.errBox.Clear()
		}
	case keyupMsg:
		m.menu.ClearKeydown()
		m.keypad.ClearPressed()
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state != stateDefault || !m.appConfig.Mouse {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	id, ok := m.keypad.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}
	b, ok := m.keypad.Button(id)
	if !ok {
		return nil
	}
	log.InputTrace("click (%d,%d) -> %s", msg.X, msg.Y, id)
	return m.press(b.Key)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	log.InputTrace("key %q", msg.String())

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]

	if m.state == stateHelp {
		if msg.Type == tea.KeyEsc || (ok && (name == keys.KeyHelp || name == keys.KeyQuit)) {
			m.state = stateDefault
			m.menu.SetState(ui.StateDefault)
		}
		return m, nil
	}

	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyHelp:
		m.state = stateHelp
		m.menu.SetState(ui.StateHelp)
		return m, nil
	case keys.KeyCopy:
		text := m.engine.String()
		if err := m.copyText(text); err != nil {
			return m, m.handleError(fmt.Errorf("failed to copy to clipboard: %w", err))
		}
		log.InfoLog.Printf("copied %s to clipboard", text)
		return m, m.keydownCallback(name)
	default:
		return m, m.press(name)
	}
}

// press runs the calculator action of name and highlights its button.
func (m *home) press(name keys.KeyName) tea.Cmd {
	if b, ok := m.keypad.ButtonForKey(name); ok {
		m.keypad.SetPressed(b.ID)
	}
	highlightCmd := m.keydownCallback(name)

	err := m.apply(name)
	// Operations such as "=" change the chain without a value notification.
	m.display.Sync(m.engine)
	log.EngineTrace("%v -> display=%s depth=%d", keys.GlobalkeyBindings[name].Help().Key, m.engine.String(), m.engine.Depth())
	if err != nil {
		return tea.Batch(highlightCmd, m.handleError(err))
	}
	return highlightCmd
}

func (m *home) setInverted(inverted bool) {
	m.inverted = inverted
	m.keypad.SetInverted(inverted)
	m.menu.SetInverted(inverted)
}

type keyupMsg struct{}

// keydownCallback clears the button and menu highlighting after 300ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(300 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen
// unless a newer error replaced it.
type hideErrMsg struct {
	gen int
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after the configured timeout.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	m.errGen++
	gen := m.errGen
	timeout := m.appConfig.ErrorTimeout()
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(timeout):
		}

		return hideErrMsg{gen: gen}
	}
}

func (m *home) View() string {
	done := log.GetProfiler().StartRender("view")
	start := time.Now()
	defer func() {
		done()
		log.GetProfiler().RecordFrame(time.Since(start))
	}()

	if m.state == stateHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpOverlay.Render())
	}

	var footer string
	if m.keypad.Degradation().ShowMinWarning {
		minimum := m.keypad.Grid().AggregateSize(layout.Minimum)
		footer = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ui.WarningStyle.Render(
			fmt.Sprintf("terminal too small: keypad needs %dx%d", minimum.Width, minimum.Height+m.menuRows()+errBoxHeight)))
	} else if m.menuRows() > 0 {
		footer = m.menu.String()
	}

	parts := []string{m.keypad.Render()}
	if footer != "" {
		parts = append(parts, footer)
	}
	parts = append(parts, m.errBox.String())
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Snapshot describes the current UI state for inspection.
func (m *home) Snapshot() *inspect.Snapshot {
	var operand *float64
	if v, err := m.engine.ActiveOperand(); err == nil {
		operand = &v
	}
	var pending string
	if op, ok := m.engine.PendingOperator(); ok {
		pending = op.Symbol
	}
	var errMsg string
	if err := m.errBox.Err(); err != nil {
		errMsg = err.Error()
	}

	root := inspect.NewNode("Home").
		WithBounds(0, 0, m.width, m.height).
		AddChild(m.keypad.InspectNode()).
		AddChild(m.menu.InspectNode()).
		AddChild(m.errBox.InspectNode())

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithCalculator(inspect.CalculatorInfo{
			State:           m.state.String(),
			Display:         m.engine.String(),
			PendingOperator: pending,
			ActiveOperand:   operand,
			StackDepth:      m.engine.Depth(),
			Inverted:        m.inverted,
			ErrorMessage:    errMsg,
		}).
		WithLayout(m.keypad.Grid(), m.keypad.Size()).
		WithComponents(root).
		WithStyles()
}

func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.Snapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspection snapshot: %v", err)
	}
}
