package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/loracharts/pkg/api"
	"github.com/matzehuels/loracharts/pkg/observability"
)

const testRequestID = "6f1c2a1e-3b7d-4c1e-9a2b-0d4e5f6a7b8c"

// serviceLogs sends one request to the service handler built by the CLI and
// returns the status and everything logged at level.
func serviceLogs(t *testing.T, level log.Level, method, path, body string) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	c := New(&buf, level)
	h, err := c.serviceHandler(c.Logger, serveOpts{heuristic: true})
	if err != nil {
		t.Fatalf("serviceHandler() error = %v", err)
	}
	t.Cleanup(observability.Reset)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.RequestIDHeader, testRequestID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, buf.String()
}

func TestServiceRequestLog(t *testing.T) {
	tests := []struct {
		name       string
		level      log.Level
		body       string
		wantStatus int
		want       []string
		notWant    []string
	}{
		{
			name:       "debug logs request and layout",
			level:      log.DebugLevel,
			body:       `{"width": 100, "labels": ["a","b","c","d"], "max_label_width": 100}`,
			wantStatus: http.StatusOK,
			want: []string{
				"request_id=" + testRequestID,
				"path=/v1/labels/rotation",
				"status=200",
				"axis layout",
				"labels=4",
				"rotation=-90",
			},
		},
		{
			name:       "info hides successful requests",
			level:      log.InfoLevel,
			body:       `{"width": 300, "labels": ["a"]}`,
			wantStatus: http.StatusOK,
			notWant:    []string{"request_id=", "axis layout"},
		},
		{
			name:       "bad request warns at info",
			level:      log.InfoLevel,
			body:       `{"width": -1, "labels": ["a"]}`,
			wantStatus: http.StatusBadRequest,
			want:       []string{"WARN", "request_id=" + testRequestID, "status=400"},
			notWant:    []string{"request error"},
		},
		{
			name:       "bad request reaches error hook at debug",
			level:      log.DebugLevel,
			body:       `{"width": -1, "labels": ["a"]}`,
			wantStatus: http.StatusBadRequest,
			want:       []string{"request error", "route=/v1/labels/rotation", "status=400"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := serviceLogs(t, tt.level, http.MethodPost, "/v1/labels/rotation", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("log output should not contain %q:\n%s", notWant, out)
				}
			}
		})
	}
}

func TestServiceFormatLog(t *testing.T) {
	status, out := serviceLogs(t, log.DebugLevel, http.MethodPost, "/v1/format/value", `{"value": 1500000, "kind": "compact"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{"path=/v1/format/value", "kind=compact"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}

	var _ observability.LayoutHooks = h
	var _ observability.HTTPHooks = h

	ctx := context.Background()
	h.OnAxisLayout(ctx, 4, -90, true, time.Millisecond)
	h.OnFormat(ctx, "currency", 2)
	h.OnError(ctx, "POST", "/v1/labels/rotation", context.DeadlineExceeded)

	out := buf.String()
	for _, want := range []string{"axis layout", "rotation=-90", "overlap=true", "kind=currency", "count=2", "route=/v1/labels/rotation"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnAxisLayout(context.Background(), 2, 0, false, time.Millisecond)
	h.OnFormat(context.Background(), "number", 1)
	if buf.Len() != 0 {
		t.Errorf("hooks should log at debug only, got:\n%s", buf.String())
	}
}

func TestRenderProgressLog(t *testing.T) {
	path := writeFile(t, "sales.csv", salesCSV)
	output := filepath.Join(t.TempDir(), "q3.svg")

	_, errOut, err := run(t, "render", "--heuristic", "-o", output, path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(errOut, "Rendered q3.svg (") {
		t.Errorf("stderr missing progress line:\n%s", errOut)
	}
}

func TestProgressElapsed(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.start = prog.start.Add(-1500 * time.Millisecond)
	prog.done("Rendered chart.png")

	if out := buf.String(); !strings.Contains(out, "Rendered chart.png (1.5s)") {
		t.Errorf("progress line = %q, want elapsed 1.5s", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"attached", withLogger(context.Background(), custom), custom},
		{"missing falls back to default", context.Background(), log.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

// Commands log through the CLI's logger, so debug output lands in the writer
// passed to New.
func TestCommandLogsToCLIWriter(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	c := New(&errOut, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"rotate", "--width", "100", "--heuristic", "January", "February"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("rotate error: %v", err)
	}
	for _, want := range []string{"config loaded", "axis layout", "labels=2"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}
