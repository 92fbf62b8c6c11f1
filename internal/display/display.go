// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent shift status bar and an input
// prompt at the bottom of the terminal. All game output is printed
// above the rendered area via Program.Println / Printf, ensuring
// concurrent writes never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elmarchena/pizzaloca/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	moneyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Customer speech — soft sky blue.
	customerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Primary text — light zinc for game messages.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints, menus, metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Urgent — soft coral for rejections.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// Compile-time interface check.
var _ domain.Presenter = (*UI)(nil)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea and implements the
// game's presentation port.
//
// Call [NewUI], then [UI.SetStats] with the shift snapshot source,
// then [UI.Run] (blocking). Other goroutines may safely call the
// print methods and read from [UI.InputChan] at any time after
// [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	stats   func() domain.ShiftSnapshot
	active  atomic.Bool // bar hidden until ShowGameUI
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// SetStats wires the status bar to its snapshot source. Must be called
// before Run.
func (u *UI) SetStats(fn func() domain.ShiftSnapshot) { u.stats = fn }

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Presenter implementation ─────────────────────────────────────

// ShowMessage prints a game message line.
func (u *UI) ShowMessage(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// ShowCustomerOrder prints the customer's order speech.
func (u *UI) ShowCustomerOrder(text string) {
	u.Println(customerStyle.Render("  " + text))
}

// HideCustomerOrder clears the order from the status bar. The bar
// reads the snapshot, so a refresh is all that's needed.
func (u *UI) HideCustomerOrder() { u.refreshBar() }

// UpdateMoney refreshes the status bar.
func (u *UI) UpdateMoney(amount int) { u.refreshBar() }

// UpdateDay refreshes the status bar.
func (u *UI) UpdateDay(day int) { u.refreshBar() }

// UpdateIngredients echoes the pizza in progress and refreshes the bar.
func (u *UI) UpdateIngredients(ids []string) {
	if len(ids) > 0 {
		u.PrintHint("Pizza so far: " + strings.Join(ids, ", "))
	}
	u.refreshBar()
}

// ShowGameUI reveals the status bar.
func (u *UI) ShowGameUI() {
	u.active.Store(true)
	u.refreshBar()
}

// refreshBar forces an immediate bar redraw instead of waiting for the
// next poll tick.
func (u *UI) refreshBar() {
	if u.program != nil && !u.done.Load() {
		u.program.Send(refreshMsg{})
	}
}

// ── Styled print helpers ─────────────────────────────────────────

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints a rejection/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the player's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("pizza") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Use a plain-text prompt so the textinput width math stays correct.
	// Lipgloss-styled prompts add invisible ANSI bytes that break the
	// internal offset/scroll calculations for long input.
	ti.Prompt = "pizza> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
		statsFn: func() (domain.ShiftSnapshot, bool) {
			if !u.active.Load() || u.stats == nil {
				return domain.ShiftSnapshot{}, false
			}
			return u.stats(), true
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	statsFn func() (domain.ShiftSnapshot, bool)

	snap     domain.ShiftSnapshot
	haveSnap bool
	width    int
}

// Messages.
type tickMsg time.Time
type refreshMsg struct{}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Return a Cmd that prints the echo — this runs
				// outside Update so it won't deadlock on msgs.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Let the text input use the full width minus the prompt ("pizza> " = 7 chars).
		const promptLen = 7
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case refreshMsg:
		m.snap, m.haveSnap = m.statsFn()
		return m, nil

	case tickMsg:
		m.snap, m.haveSnap = m.statsFn()
		cmds := []tea.Cmd{tickCmd()}
		if m.haveSnap {
			cmds = append(cmds, tea.SetWindowTitle(m.titleStr()))
		} else {
			cmds = append(cmds, tea.SetWindowTitle("Pizza Loca"))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) titleStr() string {
	return fmt.Sprintf("Pizza Loca — Day %d | $%d | %d/%d served",
		m.snap.Day, m.snap.Money, m.snap.Served, m.snap.MaxCustomers)
}

func (m model) View() string {
	var b strings.Builder

	if m.haveSnap {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	parts := []string{
		dayStyle.Render(fmt.Sprintf("Day %d", m.snap.Day)),
		moneyStyle.Render(fmt.Sprintf("$%d", m.snap.Money)),
		labelStyle.Render(fmt.Sprintf("Served %d/%d", m.snap.Served, m.snap.MaxCustomers)),
	}
	if m.snap.OrderText != "" {
		parts = append(parts, labelStyle.Render("Order: ")+primaryStyle.Render(m.snap.OrderText))
	}
	if len(m.snap.Selected) > 0 {
		parts = append(parts, labelStyle.Render("Pizza: ")+primaryStyle.Render(strings.Join(m.snap.Selected, "+")))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
