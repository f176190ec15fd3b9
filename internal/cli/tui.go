package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/loracharts/pkg/labels"
)

// Preview styles
var (
	previewAngleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewOverlapStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	previewClearStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	previewDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	previewBarStyle     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	minPreviewWidth = 10.0
	maxPreviewWidth = 4000.0
	minPreviewFont  = 6.0
	maxPreviewFont  = 72.0
)

// =============================================================================
// Key Bindings
// =============================================================================

type previewKeyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	Smaller  key.Binding
	Larger   key.Binding
	Auto     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider},
		{k.Smaller, k.Larger},
		{k.Auto, k.Help, k.Quit},
	}
}

var previewKeys = previewKeyMap{
	Narrower: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "narrower")),
	Wider:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "wider")),
	Smaller:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "smaller font")),
	Larger:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "larger font")),
	Auto:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle auto-rotate")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// =============================================================================
// PreviewModel - Interactive axis preview
// =============================================================================

// PreviewModel is the bubbletea model that re-runs the label layout as the
// axis width and font size change.
type PreviewModel struct {
	Labels     []string
	Width      float64
	Step       float64
	Font       labels.Font
	AutoRotate bool
	Layout     labels.AxisLayout

	measurer labels.TextMeasurer
	keys     previewKeyMap
	help     help.Model
}

// NewPreviewModel creates a preview over values at the given axis width.
// Width changes by step pixels per key press.
func NewPreviewModel(m labels.TextMeasurer, values []string, width, step float64, font labels.Font) PreviewModel {
	if !(font.Size > 0) {
		font.Size = labels.AxisFontSize
	}
	p := PreviewModel{
		Labels:     values,
		Width:      width,
		Step:       step,
		Font:       font,
		AutoRotate: true,
		measurer:   m,
		keys:       previewKeys,
		help:       help.New(),
	}
	p.relayout()
	return p
}

func (m *PreviewModel) relayout() {
	m.Layout = labels.LayoutAxis(m.measurer, m.Width, m.Labels, m.Font, labels.WithAutoRotate(m.AutoRotate))
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrower):
			m.Width = max(minPreviewWidth, m.Width-m.Step)
		case key.Matches(msg, m.keys.Wider):
			m.Width = min(maxPreviewWidth, m.Width+m.Step)
		case key.Matches(msg, m.keys.Smaller):
			m.Font.Size = max(minPreviewFont, m.Font.Size-1)
		case key.Matches(msg, m.keys.Larger):
			m.Font.Size = min(maxPreviewFont, m.Font.Size+1)
		case key.Matches(msg, m.keys.Auto):
			m.AutoRotate = !m.AutoRotate
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.relayout()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Axis Label Preview"))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("width %s · font %s · auto-rotate %t",
		px(m.Width), px(m.Font.Size), m.AutoRotate)))
	b.WriteString("\n\n")

	b.WriteString("rotation ")
	b.WriteString(previewAngleStyle.Render(m.Layout.Rotation.String() + "°"))
	b.WriteString("   ")
	if m.Layout.Overlap {
		b.WriteString(previewOverlapStyle.Render("overlap"))
	} else {
		b.WriteString(previewClearStyle.Render("no overlap"))
	}
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("per label %s · widest %s",
		px(m.Layout.PerLabel), px(m.Layout.MaxLabelWidth))))
	b.WriteString("\n\n")

	widths := labels.Widths(m.measurer, m.Labels, m.Layout.Font)
	t := newTable("Label", "Width", "")
	for i, label := range m.Labels {
		t.Row(label, px(widths[i]), widthBar(widths[i], m.Layout.PerLabel))
	}
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// widthBar draws w as a bar of at most 20 cells, with slot marking the space
// each label gets on the axis.
func widthBar(w, slot float64) string {
	const cells = 20
	if !(slot > 0) {
		return ""
	}
	n := 0
	if w > 0 {
		n = int(min(cells, w/slot*cells/2))
	}
	mark := cells / 2
	bar := []rune(strings.Repeat("█", n) + strings.Repeat(" ", cells-n))
	if bar[mark] == ' ' {
		bar[mark] = '│'
	}
	return previewBarStyle.Render(string(bar))
}
