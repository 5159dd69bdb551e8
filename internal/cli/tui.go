package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/layout"
)

var (
	keySelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	keyAdjacentStyle = lipgloss.NewStyle().Foreground(colorGreen)
	keyNearStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	keyNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// keyBrowserModel is the bubbletea model for interactive adjacency
// browsing. The keyboard is drawn with its physical stagger; the
// cursor key's neighbors are highlighted by distance class.
type keyBrowserModel struct {
	def    layout.Definition
	matrix distance.Matrix
	keys   []rune // all keys in row order, cursor indexes into this
	cursor int
}

// newKeyBrowserModel creates a key browser for a layout.
func newKeyBrowserModel(def layout.Definition, m distance.Matrix) keyBrowserModel {
	var keys []rune
	for _, row := range def.Rows {
		keys = append(keys, []rune(row)...)
	}
	return keyBrowserModel{def: def, matrix: m, keys: keys}
}

func (m keyBrowserModel) Init() tea.Cmd {
	return nil
}

func (m keyBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j":
			if m.cursor < len(m.keys)-1 {
				m.cursor++
			}
		default:
			// Jump directly to a typed letter if it is on the layout.
			if r := []rune(msg.String()); len(r) == 1 {
				for i, key := range m.keys {
					if key == r[0] {
						m.cursor = i
						break
					}
				}
			}
		}
	}
	return m, nil
}

func (m keyBrowserModel) View() string {
	var b strings.Builder

	selected := m.keys[m.cursor]

	b.WriteString(StyleTitle.Render(m.def.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ move  letter jump  q quit"))
	b.WriteString("\n\n")

	for r, row := range m.def.Rows {
		// Half of the stagger in half-key units, as leading spaces.
		b.WriteString(strings.Repeat(" ", r))
		for _, key := range row {
			b.WriteString(m.renderKey(key, selected))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("adjacent: "))
	b.WriteString(keyAdjacentStyle.Render(spaced(m.matrix.Neighbors(selected))))
	b.WriteString("\n")

	return b.String()
}

// renderKey styles one key cap according to its distance class from
// the selected key.
func (m keyBrowserModel) renderKey(key, selected rune) string {
	s := string(key)
	switch {
	case key == selected:
		return keySelectedStyle.Render("[" + s + "]")
	case m.matrix.At(selected, key) == distance.Adjacent:
		return keyAdjacentStyle.Render(" " + s + " ")
	case m.matrix.At(selected, key) == distance.Near:
		return keyNearStyle.Render(" " + s + " ")
	default:
		return keyNormalStyle.Render(" " + s + " ")
	}
}
