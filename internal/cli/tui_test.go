package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/loracharts/pkg/labels"
)

func fixedMeasurer(w float64) labels.TextMeasurer {
	return labels.MeasurerFunc(func(string, labels.Font) float64 { return w })
}

func press(m PreviewModel, keys ...string) PreviewModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(PreviewModel)
	}
	return m
}

func TestPreviewModelWidth(t *testing.T) {
	m := NewPreviewModel(fixedMeasurer(100), []string{"a", "b", "c"}, 300, 100, labels.Font{})
	if m.Layout.Rotation != labels.RotateNone {
		t.Fatalf("initial rotation = %v, want 0", m.Layout.Rotation)
	}
	if m.Font.Size != labels.AxisFontSize {
		t.Errorf("default font size = %v, want %v", m.Font.Size, labels.AxisFontSize)
	}

	m = press(m, "left")
	if m.Width != 200 {
		t.Errorf("width after left = %v, want 200", m.Width)
	}
	if m.Layout.Rotation == labels.RotateNone {
		t.Errorf("rotation at 200px = %v, want rotated", m.Layout.Rotation)
	}

	m = press(m, "l", "l")
	if m.Width != 400 || m.Layout.Rotation != labels.RotateNone {
		t.Errorf("after widening: width %v rotation %v", m.Width, m.Layout.Rotation)
	}

	m = press(m, "h", "h", "h", "h", "h", "h")
	if m.Width != minPreviewWidth {
		t.Errorf("width = %v, want clamped to %v", m.Width, minPreviewWidth)
	}
}

func TestPreviewModelFontAndAutoRotate(t *testing.T) {
	m := NewPreviewModel(labels.HeuristicMeasurer{}, []string{"January", "February", "March"}, 60, 10, labels.Font{Size: 10})

	m = press(m, "up", "up", "down")
	if m.Font.Size != 11 {
		t.Errorf("font size = %v, want 11", m.Font.Size)
	}
	if m.Layout.Font.Size != 11 {
		t.Errorf("layout font size = %v, want 11", m.Layout.Font.Size)
	}

	if m.Layout.Rotation == labels.RotateNone {
		t.Fatalf("crowded axis should rotate")
	}
	m = press(m, "a")
	if m.AutoRotate || m.Layout.Rotation != labels.RotateNone {
		t.Errorf("auto-rotate off: AutoRotate %v rotation %v", m.AutoRotate, m.Layout.Rotation)
	}
	if !m.Layout.Overlap {
		t.Error("horizontal crowded labels should overlap")
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := NewPreviewModel(fixedMeasurer(10), []string{"a"}, 100, 10, labels.Font{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := NewPreviewModel(fixedMeasurer(100), []string{"alpha", "beta"}, 100, 10, labels.Font{})
	view := m.View()
	for _, want := range []string{"Axis Label Preview", "alpha", "beta", "100.00px", "overlap", "-90°"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = press(m, "?")
	if !strings.Contains(m.View(), "smaller font") {
		t.Errorf("full help should list all keys:\n%s", m.View())
	}
}

func TestWidthBar(t *testing.T) {
	if got := widthBar(10, 0); got != "" {
		t.Errorf("widthBar with no slot = %q, want empty", got)
	}
	if got := widthBar(50, 100); !strings.Contains(got, "│") {
		t.Errorf("label narrower than its slot should show the slot mark: %q", got)
	}
	if got := widthBar(500, 100); strings.Contains(got, "│") || strings.Count(got, "█") != 20 {
		t.Errorf("overflowing label should fill the bar: %q", got)
	}
}
