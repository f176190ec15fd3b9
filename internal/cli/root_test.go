package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/loracharts/pkg/buildinfo"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/labels"
)

// execute runs the root command with args and the config directory under home.
func execute(t *testing.T, home string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", home)

	var out, errOut bytes.Buffer
	c := New(&errOut, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// run executes args with an empty config directory.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return execute(t, t.TempDir(), args...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(out, "loracharts version "+buildinfo.Version) {
		t.Errorf("--version output = %q", out)
	}
}

func TestRotateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want labels.Rotation
	}{
		{"fits", []string{"--width", "300", "--max-width", "100", "a", "b", "c"}, labels.RotateNone},
		{"crowded", []string{"--width", "100", "--max-width", "100", "a", "b", "c", "d"}, labels.Rotate90},
		{"forced", []string{"--width", "1000", "--max-width", "10", "--rotation", "-45", "a"}, labels.Rotate45},
		{"no auto", []string{"--width", "100", "--max-width", "100", "--no-auto-rotate", "a", "b", "c", "d"}, labels.RotateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"rotate", "--json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("rotate error: %v", err)
			}
			var layout labels.AxisLayout
			if err := json.Unmarshal([]byte(out), &layout); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if layout.Rotation != tt.want {
				t.Errorf("Rotation = %v, want %v", layout.Rotation, tt.want)
			}
		})
	}
}

func TestRotateCommandText(t *testing.T) {
	out, _, err := run(t, "rotate", "--width", "100", "--max-width", "100", "--no-auto-rotate", "a", "b", "c", "d")
	if err != nil {
		t.Fatalf("rotate error: %v", err)
	}
	for _, want := range []string{"rotation", "0°", "overlap", "true", "consider --rotation -45"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRotateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"negative width", []string{"--width", "-1", "a"}, errors.ErrCodeInvalidInput},
		{"bad rotation", []string{"--width", "100", "--rotation", "30", "a"}, errors.ErrCodeInvalidInput},
		{"huge font", []string{"--width", "100", "--font-size", "100000", "a"}, errors.ErrCodeInvalidFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"rotate"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, _, err := run(t, "rotate", "a"); err == nil {
		t.Error("rotate without --width should fail")
	}
}

func TestMeasureCommand(t *testing.T) {
	out, _, err := run(t, "measure", "--heuristic", "--font-size", "10", "ab", "abcd")
	if err != nil {
		t.Fatalf("measure error: %v", err)
	}
	for _, want := range []string{"12.00px", "24.00px"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "measure", "--heuristic", "--font-size", "10", "--truncate", "37", "September")
	if err != nil {
		t.Fatalf("measure --truncate error: %v", err)
	}
	if !strings.Contains(out, "Sep...") {
		t.Errorf("output missing truncated text:\n%s", out)
	}
}

func TestMeasureUsesConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "heuristic = true\n\n[font]\nsize = 10\n")

	out, _, err := execute(t, home, "measure", "ab")
	if err != nil {
		t.Fatalf("measure error: %v", err)
	}
	if !strings.Contains(out, "12.00px") {
		t.Errorf("configured font not applied:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "bogus = true\n")

	_, _, err := execute(t, home, "measure", "ab")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "measure", "ab")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"currency", []string{"value", "--kind", "currency", "1234.5"}, "$1,234.50\n"},
		{"compact", []string{"value", "--kind", "compact", "1500000", "1234"}, "1.5M\n1.2K\n"},
		{"locale", []string{"value", "--locale", "de-DE", "1234.5"}, "1.234,5\n"},
		{"date", []string{"date", "--kind", "long", "2024-03-05"}, "March 5, 2024\n"},
		{"full date", []string{"date", "--kind", "full", "2024-03-05"}, "Tuesday, March 5, 2024\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"format"}, tt.args...)...)
			if err != nil {
				t.Fatalf("format error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFormatCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"not a number", []string{"value", "abc"}, errors.ErrCodeInvalidInput},
		{"unknown kind", []string{"value", "--kind", "money", "1"}, errors.ErrCodeInvalidFormat},
		{"bad date", []string{"date", "yesterday"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"format"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestPaletteCommand(t *testing.T) {
	out, _, err := run(t, "palette", "--base", "#ff0000", "--count", "3")
	if err != nil {
		t.Fatalf("palette error: %v", err)
	}
	for _, want := range []string{"rgb(255, 0, 0)", "rgb(0, 255, 0)", "rgb(0, 0, 255)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := run(t, "palette", "--base", "nope"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("bad base: error = %v, want INVALID_COLOR", err)
	}
	if _, _, err := run(t, "palette", "--count", "1000"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("large count: error = %v, want INVALID_INPUT", err)
	}
}

func TestColorCommand(t *testing.T) {
	out, _, err := run(t, "color", "rgba", "#ff8000", "--alpha", "0.5")
	if err != nil {
		t.Fatalf("color rgba error: %v", err)
	}
	if out != "rgba(255, 128, 0, 0.5)\n" {
		t.Errorf("color rgba = %q", out)
	}

	out, errOut, err := run(t, "color", "rgba", "red")
	if err != nil {
		t.Fatalf("color rgba error: %v", err)
	}
	if out != "red\n" || !strings.Contains(errOut, "returned unchanged") {
		t.Errorf("color rgba red: stdout %q, stderr %q", out, errOut)
	}

	if _, _, err := run(t, "color", "darken", "#336699", "-k", "1"); err != nil {
		t.Errorf("color darken error: %v", err)
	}
	if _, _, err := run(t, "color", "lighten", "bogus"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("color lighten bogus: error = %v, want INVALID_COLOR", err)
	}
}

func TestThemeCommands(t *testing.T) {
	out, _, err := run(t, "theme", "show", "--format", "json")
	if err != nil {
		t.Fatalf("theme show error: %v", err)
	}
	if !strings.Contains(out, `"primary": "#007bff"`) {
		t.Errorf("theme show output:\n%s", out)
	}

	path := writeFile(t, "theme.json", out)
	out, _, err = run(t, "theme", "validate", path)
	if err != nil {
		t.Fatalf("theme validate error: %v", err)
	}
	if !strings.Contains(out, "is a valid light theme") {
		t.Errorf("theme validate output:\n%s", out)
	}

	bad := writeFile(t, "bad.json", `{"mode": "sepia"}`)
	_, errOut, err := run(t, "theme", "validate", bad)
	if err == nil {
		t.Fatal("invalid theme should fail")
	}
	if !strings.Contains(errOut, "is not a valid theme") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestScaleCommands(t *testing.T) {
	out, _, err := run(t, "scale", "ticks", "--domain", "0,100", "--range", "0,500", "--count", "5")
	if err != nil {
		t.Fatalf("scale ticks error: %v", err)
	}
	for _, want := range []string{"20", "100", "500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "scale", "ticks", "--kind", "time", "--domain", "2024-01-01,2024-01-31", "--range", "0,800")
	if err != nil {
		t.Fatalf("scale ticks time error: %v", err)
	}
	if !strings.Contains(out, "2024-01-") {
		t.Errorf("time ticks output:\n%s", out)
	}

	out, _, err = run(t, "scale", "band", "--range", "0,100", "a", "b", "c")
	if err != nil {
		t.Fatalf("scale band error: %v", err)
	}
	if !strings.Contains(out, "step 31.25") {
		t.Errorf("band output:\n%s", out)
	}
}

func TestScaleCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"band ticks", []string{"ticks", "--kind", "band"}, errors.ErrCodeUnsupported},
		{"log crossing zero", []string{"ticks", "--kind", "log", "--domain", "-1,10"}, errors.ErrCodeInvalidInput},
		{"one bound", []string{"ticks", "--domain", "1"}, errors.ErrCodeInvalidInput},
		{"zero count", []string{"ticks", "--count", "0"}, errors.ErrCodeInvalidInput},
		{"bad padding", []string{"band", "--padding-inner", "1", "a"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"scale"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

const salesCSV = "label,value\nNorth,10\nSouth,30\nNorth,20\n"

func TestDataSummaryCommand(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)

	out, _, err := run(t, "data", "summary", path)
	if err != nil {
		t.Fatalf("data summary error: %v", err)
	}
	for _, want := range []string{"North", "South", "3 points", "1.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "data", "summary", "--aggregate", "sum", "--kind", "currency", path)
	if err != nil {
		t.Fatalf("data summary --aggregate error: %v", err)
	}
	for _, want := range []string{"2 points", "$30.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := run(t, "data", "summary", "--aggregate", "median", path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown aggregation: error = %v, want INVALID_INPUT", err)
	}
	if _, _, err := run(t, "data", "summary", filepath.Join(t.TempDir(), "none.csv")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)
	output := filepath.Join(t.TempDir(), "sales.svg")

	_, errOut, err := run(t, "render", "--heuristic", "--title", "Sales", "-o", output, path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "Sales") || !strings.Contains(svg, `class="bar"`) {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	if !strings.Contains(errOut, output) {
		t.Errorf("stderr should name the output file: %q", errOut)
	}

	out, _, err := run(t, "render", "--heuristic", path)
	if err != nil {
		t.Fatalf("render to stdout error: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("stdout should hold svg, got %q", out)
	}

	if _, _, err := run(t, "render", "-f", "gif", path); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("gif: error = %v, want UNSUPPORTED", err)
	}
	if _, _, err := run(t, "render", "--rotation", "12", path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad rotation: error = %v, want INVALID_INPUT", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		output, flag, want string
		wantErr            bool
	}{
		{"", "", "svg", false},
		{"chart.PDF", "", "pdf", false},
		{"chart.svg", "png", "png", false},
		{"chart.txt", "", "", true},
	}

	for _, tt := range tests {
		got, err := outputFormat(tt.output, tt.flag)
		if (err != nil) != tt.wantErr {
			t.Errorf("outputFormat(%q, %q) error = %v, wantErr %v", tt.output, tt.flag, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("outputFormat(%q, %q) = %q, want %q", tt.output, tt.flag, got, tt.want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShellNames() {
		for _, args := range [][]string{{"completion", shell}, {"completion", "--no-descriptions", shell}} {
			t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
				out, _, err := run(t, args...)
				if err != nil {
					t.Fatalf("%v error: %v", args, err)
				}
				if !strings.Contains(out, "loracharts") {
					t.Errorf("%v output does not mention loracharts", args)
				}
			})
		}
	}

	if _, _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}

	out, _, err := run(t, "completion", "--help")
	if err != nil {
		t.Fatalf("completion --help error: %v", err)
	}
	for _, s := range completionShells {
		if !strings.Contains(out, s.install) {
			t.Errorf("help missing install line for %s:\n%s", s.name, out)
		}
	}
}
