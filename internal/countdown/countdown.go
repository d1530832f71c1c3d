// Package countdown drives the live large-font countdown display. It owns
// the single render loop: one tick per second, aligned to whole-second
// boundaries, redrawing in place until the target instant is reached.
package countdown

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/tickdown/internal/font"
)

// Color thresholds, as a fraction of total time remaining.
const (
	highPercent = 0.5
	lowPercent  = 0.2
)

var (
	styleHigh    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	styleMid     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	styleLow     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
)

// Options is the immutable timer state the display runs with. It is built
// once at startup and never mutated afterwards.
type Options struct {
	Target  time.Time
	Message string
	Font    *font.Font
	Bell    bool
}

// Result reports how the display loop ended.
type Result struct {
	// Interrupted is true when the user quit before the target instant.
	Interrupted bool
}

// TickMsg carries the wall-clock time of one display tick.
type TickMsg time.Time

// Model is the bubbletea model for the countdown. The zero value is not
// usable; construct with NewModel.
type Model struct {
	target  time.Time
	message string
	font    *font.Font
	total   time.Duration

	width       int
	height      int
	remaining   time.Duration
	expired     bool
	interrupted bool
}

// NewModel builds the display model for the given options, measuring the
// total duration from now for the color thresholds.
func NewModel(opts Options, now time.Time) Model {
	return Model{
		target:    opts.Target,
		message:   opts.Message,
		font:      opts.Font,
		total:     opts.Target.Sub(now),
		remaining: clampRemaining(opts.Target, now),
	}
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// tick fires on the next whole-second boundary rather than a fixed delay,
// so the display never drifts relative to the clock.
func tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update advances the countdown state machine: Running until the target
// instant, then Expired (terminal).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The next View re-centers against the new size.
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.remaining = clampRemaining(m.target, time.Time(msg))
		if m.remaining == 0 {
			m.expired = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.InterruptMsg:
		m.interrupted = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the clock block and optional message, centered to the
// current terminal size.
func (m Model) View() string {
	clock := m.font.Render(FormatClock(m.remaining))
	block := m.styleForRemaining().Render(clock)
	if m.message != "" {
		block = lipgloss.JoinVertical(lipgloss.Center, block, styleMessage.Render(m.message))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Expired reports whether the countdown reached zero.
func (m Model) Expired() bool { return m.expired }

// Interrupted reports whether the user quit early.
func (m Model) Interrupted() bool { return m.interrupted }

// Remaining returns the clamped remaining duration as of the last tick.
func (m Model) Remaining() time.Duration { return m.remaining }

// styleForRemaining picks the clock color from the fraction of time left.
func (m Model) styleForRemaining() lipgloss.Style {
	if m.total <= 0 {
		return styleLow
	}
	frac := float64(m.remaining) / float64(m.total)
	switch {
	case frac > highPercent:
		return styleHigh
	case frac > lowPercent:
		return styleMid
	default:
		return styleLow
	}
}

// clampRemaining computes target − now, clamped at zero so the display
// never shows a negative time.
func clampRemaining(target, now time.Time) time.Duration {
	remaining := target.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatClock renders a duration as zero-padded HH:MM:SS. Hours are not
// capped at two digits; long countdowns widen the field instead of
// truncating.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// Run executes the blocking display loop. The terminal is switched to the
// alternate screen for the duration of the run; bubbletea guarantees the
// screen and cursor are restored on every exit path, including interrupts
// and panics.
func Run(ctx context.Context, opts Options) (Result, error) {
	model := NewModel(opts, time.Now())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("countdown display: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("countdown display returned unexpected model %T", final)
	}
	return Result{Interrupted: m.interrupted}, nil
}
