package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradgen/gradgen/pkg/clipboard"
	"github.com/gradgen/gradgen/pkg/gradient"
	gio "github.com/gradgen/gradgen/pkg/io"
)

// angleStep is how far one keypress rotates a linear gradient.
const angleStep = 5

// copiedDuration is how long the clipboard confirmation stays visible.
const copiedDuration = 2 * time.Second

// copyResetMsg clears the clipboard confirmation.
type copyResetMsg struct{}

// =============================================================================
// editorModel - Interactive gradient editing
// =============================================================================

// editorModel is the bubbletea model for the gradient editor. All edits
// go through the gradient package's mutation methods, so the config in
// the model is always valid.
type editorModel struct {
	cfg      gradient.Config
	cursor   int    // selected stop index
	format   string // artifact format for copy/save: "css", "svg", "html"
	width    int    // terminal width for the preview strip
	status   string // transient status line (saved file, copy confirmation)
	copied   bool
	quitting bool
}

// newEditorModel creates an editor starting from cfg.
func newEditorModel(cfg gradient.Config) editorModel {
	return editorModel{
		cfg:    cfg.Sorted(),
		format: formatCSS,
		width:  60,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if m.width < 20 {
			m.width = 20
		}

	case copyResetMsg:
		m.copied = false
		m.status = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.cfg.Stops)-1 {
				m.cursor++
			}

		case "up", "k":
			m.adjustOffset(1)
		case "down", "j":
			m.adjustOffset(-1)
		case "shift+up", "K":
			m.adjustOffset(10)
		case "shift+down", "J":
			m.adjustOffset(-10)

		case "[":
			m.adjustAngle(-angleStep)
		case "]":
			m.adjustAngle(angleStep)

		case "t":
			next := gradient.TypeRadial
			if m.cfg.Type == gradient.TypeRadial {
				next = gradient.TypeLinear
			}
			if cfg, err := m.cfg.WithType(next); err == nil {
				m.cfg = cfg
			}

		case "a":
			cfg, added := m.cfg.AddStop()
			m.cfg = cfg
			for i, s := range m.cfg.Stops {
				if s.ID == added.ID {
					m.cursor = i
					break
				}
			}

		case "d":
			if len(m.cfg.Stops) > gradient.MinStops {
				id := m.cfg.Stops[m.cursor].ID
				m.cfg, _ = m.cfg.RemoveStop(id)
				if m.cursor >= len(m.cfg.Stops) {
					m.cursor = len(m.cfg.Stops) - 1
				}
			} else {
				m.status = StyleWarning.Render(fmt.Sprintf("need at least %d stops", gradient.MinStops))
			}

		case "r":
			s := m.cfg.Stops[m.cursor]
			if cfg, err := m.cfg.UpdateStop(s.ID, gradient.RandomColor(), s.Offset); err == nil {
				m.cfg = cfg
				m.trackStop(s.ID)
			}

		case "n":
			n := m.cfg.Noise
			n.Enabled = !n.Enabled
			if cfg, err := m.cfg.WithNoise(n); err == nil {
				m.cfg = cfg
			}

		case "f":
			m.format = nextFormat(m.format)

		case "c":
			// copyArtifact mutates the model's status fields; run it
			// before m is evaluated as a return operand.
			cmd := m.copyArtifact()
			return m, cmd

		case "s":
			path, err := gio.Export(m.cfg, m.format, "")
			if err != nil {
				m.status = StyleWarning.Render(err.Error())
			} else {
				m.status = StyleSuccess.Render("saved " + path)
			}
		}
	}
	return m, nil
}

// adjustOffset moves the selected stop by delta, clamped to the offset
// domain. The cursor follows the stop through re-sorting.
func (m *editorModel) adjustOffset(delta int) {
	s := m.cfg.Stops[m.cursor]
	offset := s.Offset + delta
	if offset < gradient.MinOffset {
		offset = gradient.MinOffset
	}
	if offset > gradient.MaxOffset {
		offset = gradient.MaxOffset
	}
	if cfg, err := m.cfg.UpdateStop(s.ID, s.Color, offset); err == nil {
		m.cfg = cfg
		m.trackStop(s.ID)
	}
}

func (m *editorModel) adjustAngle(delta float64) {
	if cfg, err := m.cfg.WithAngle(m.cfg.AngleDeg + delta + 360); err == nil {
		m.cfg = cfg
	}
}

// trackStop re-points the cursor at the stop with the given ID after a
// mutation re-sorted the stop list.
func (m *editorModel) trackStop(id string) {
	for i, s := range m.cfg.Stops {
		if s.ID == id {
			m.cursor = i
			return
		}
	}
}

// copyArtifact renders the current artifact, writes it to the clipboard
// via OSC 52, and schedules the confirmation reset.
func (m *editorModel) copyArtifact() tea.Cmd {
	data, err := gio.Render(m.cfg, m.format)
	if err != nil {
		m.status = StyleWarning.Render(err.Error())
		return nil
	}
	if err := clipboard.Copy(os.Stderr, string(data)); err != nil {
		m.status = StyleWarning.Render("clipboard unavailable")
		return nil
	}
	m.copied = true
	m.status = StyleSuccess.Render("copied " + m.format + " to clipboard")
	return tea.Tick(copiedDuration, func(time.Time) tea.Msg {
		return copyResetMsg{}
	})
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gradient Editor"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %g° · %s", m.cfg.Type, m.cfg.AngleDeg, m.format)))
	b.WriteString("\n\n")

	b.WriteString("  " + gradientSwatch(m.cfg, m.width))
	b.WriteString("\n")
	b.WriteString("  " + stopMarkers(m.cfg, m.width, m.cursor))
	b.WriteString("\n\n")

	for i, s := range m.cfg.Stops {
		cursor := "  "
		line := fmt.Sprintf("%s at %3d%%", s.Color, s.Offset)
		if i == m.cursor {
			cursor = StyleHighlight.Render("▸ ")
			b.WriteString(cursor + StyleValue.Render(line))
		} else {
			b.WriteString(cursor + StyleDim.Render(line))
		}
		b.WriteString("\n")
	}

	noise := "off"
	if m.cfg.Noise.Enabled {
		noise = fmt.Sprintf("freq %g · %d octaves · scale %g",
			m.cfg.Noise.BaseFrequency, m.cfg.Noise.NumOctaves, m.cfg.Noise.Scale)
	}
	b.WriteString("\n  " + StyleDim.Render("noise: ") + StyleValue.Render(noise))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("  ←/→ stop  ↑/↓ offset  [/] angle  t type  a add  d delete  r color"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  n noise  f format  c copy  s save  q quit"))

	if m.status != "" {
		b.WriteString("\n\n  " + m.status)
	}

	return b.String()
}

// nextFormat cycles css -> svg -> html -> css.
func nextFormat(f string) string {
	switch f {
	case formatCSS:
		return formatSVG
	case formatSVG:
		return formatHTML
	default:
		return formatCSS
	}
}
