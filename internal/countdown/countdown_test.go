package countdown

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tickdown/internal/font"
)

func plainFont(t *testing.T) *font.Font {
	t.Helper()
	f, err := font.Builtin().Lookup("plain")
	require.NoError(t, err)
	return f
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{90 * time.Minute, "01:30:00"},
		{15*time.Minute + 30*time.Second, "00:15:30"},
		{25 * time.Hour, "25:00:00"},
		{100*time.Hour + time.Minute, "100:01:00"}, // hours widen, never truncate
		{-5 * time.Second, "00:00:00"},             // negative clamps to zero
		{59*time.Second + 900*time.Millisecond, "00:01:00"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatClock(tc.d))
		})
	}
}

func TestModel_TickCountsDown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
	m := NewModel(Options{Target: now.Add(10 * time.Second), Font: plainFont(t)}, now)
	assert.Equal(t, 10*time.Second, m.Remaining())

	next, cmd := m.Update(TickMsg(now.Add(3 * time.Second)))
	m = next.(Model)
	assert.Equal(t, 7*time.Second, m.Remaining())
	assert.False(t, m.Expired())
	assert.NotNil(t, cmd, "a running countdown schedules the next tick")
}

func TestModel_ExpiresAtZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
	m := NewModel(Options{Target: now.Add(2 * time.Second), Font: plainFont(t)}, now)

	next, _ := m.Update(TickMsg(now.Add(2 * time.Second)))
	m = next.(Model)
	assert.True(t, m.Expired())
	assert.Equal(t, time.Duration(0), m.Remaining())
}

func TestModel_NeverNegative(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
	m := NewModel(Options{Target: now.Add(time.Second), Font: plainFont(t)}, now)

	// A tick landing past the target clamps to zero rather than going
	// negative.
	next, _ := m.Update(TickMsg(now.Add(5 * time.Second)))
	m = next.(Model)
	assert.Equal(t, time.Duration(0), m.Remaining())
	assert.True(t, m.Expired())
	assert.Contains(t, m.View(), "00:00:00")
}

func TestModel_InterruptKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"ctrl+c", "q", "esc"} {
		t.Run(key, func(t *testing.T) {
			now := time.Now()
			m := NewModel(Options{Target: now.Add(time.Minute), Font: plainFont(t)}, now)

			var msg tea.KeyMsg
			switch key {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			next, _ := m.Update(msg)
			m = next.(Model)
			assert.True(t, m.Interrupted())
			assert.False(t, m.Expired())
		})
	}
}

func TestModel_ViewRecentersOnResize(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
	m := NewModel(Options{Target: now.Add(time.Hour), Font: plainFont(t)}, now)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 9})
	m = next.(Model)
	narrow := m.View()
	assert.Len(t, strings.Split(narrow, "\n"), 9)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 9})
	m = next.(Model)
	wide := m.View()

	narrowPad := leadingSpaces(centerLine(narrow))
	widePad := leadingSpaces(centerLine(wide))
	assert.Greater(t, widePad, narrowPad, "wider terminal centers with more padding")
}

func TestModel_ViewShowsMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
	m := NewModel(Options{
		Target:  now.Add(time.Hour),
		Message: "tea break",
		Font:    plainFont(t),
	}, now)

	view := m.View()
	assert.Contains(t, view, "01:00:00")
	assert.Contains(t, view, "tea break")
}

// centerLine returns the non-blank line holding the clock text.
func centerLine(view string) string {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, ":") {
			return line
		}
	}
	return ""
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
