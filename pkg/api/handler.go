package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	"github.com/matzehuels/loracharts/pkg/buildinfo"
	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/observability"
	"github.com/matzehuels/loracharts/pkg/scale"
	"github.com/matzehuels/loracharts/pkg/theme"
)

// Config configures the HTTP handler.
type Config struct {
	// Measurer measures label text. Nil uses the length heuristic.
	Measurer labels.TextMeasurer
	// Theme is served on /v1/theme. Nil uses theme.Default().
	Theme *theme.Theme
	// Logger receives request logs. Nil uses log.Default().
	Logger *log.Logger
	// EnableCORS allows cross-origin requests from any origin.
	EnableCORS bool
	// Metrics, when set, is mounted on /metrics.
	Metrics http.Handler
}

type server struct {
	measurer labels.TextMeasurer
	theme    *theme.Theme
}

// NewHandler returns the service router.
func NewHandler(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.Default()
	}
	s := &server{measurer: cfg.Measurer, theme: cfg.Theme}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(requestLogger(cfg.Logger))
	router.Use(instrument)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(notFoundHandler)
	router.MethodNotAllowed(methodNotAllowedHandler)

	router.Get("/healthz", health)
	router.Get("/version", version)
	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	router.Route("/v1", func(router chi.Router) {
		router.Route("/labels", func(router chi.Router) {
			router.Post("/rotation", s.rotation)
			router.Post("/width", s.width)
			router.Post("/truncate", s.truncate)
		})
		router.Route("/format", func(router chi.Router) {
			router.Post("/value", formatValue)
			router.Post("/date", formatDate)
		})
		router.Post("/colors/palette", palette)
		router.Post("/scale/ticks", ticks)
		router.Get("/theme", s.getTheme)
	})

	if cfg.EnableCORS {
		return cors.AllowAll().Handler(router)
	}
	return router
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_ = render.Render(w, r, ErrNotFound)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, ErrMethodNotAllowed)
}

// respond renders v, falling back to a render error response.
func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		_ = render.Render(w, r, ErrorRender(err))
	}
}

// fail renders err and reports it to the HTTP hooks.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorFor(err)
	logger(r).Debug("request failed", "status", resp.HTTPStatusCode, "err", err)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	_ = render.Render(w, r, resp)
}

func health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, &HealthResponse{Status: "ok"})
}

func version(w http.ResponseWriter, r *http.Request) {
	respond(w, r, &VersionResponse{Info: buildinfo.Get()})
}

func (s *server) rotation(w http.ResponseWriter, r *http.Request) {
	req := &RotationRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}

	var opts []labels.AxisOption
	if req.Padding != nil {
		opts = append(opts, labels.WithPadding(*req.Padding))
	}
	if req.Rotation != nil {
		opts = append(opts, labels.WithRotation(labels.Rotation(*req.Rotation)))
	}
	if req.AutoRotate != nil {
		opts = append(opts, labels.WithAutoRotate(*req.AutoRotate))
	}
	measurer := s.measurer
	if req.MaxLabelWidth != nil {
		fixed := *req.MaxLabelWidth
		measurer = labels.MeasurerFunc(func(string, labels.Font) float64 { return fixed })
	}

	start := time.Now()
	layout := labels.LayoutAxis(measurer, req.Width, req.Labels, req.Font, opts...)
	resp := &RotationResponse{
		Rotation:      layout.Rotation,
		ShouldRotate:  layout.Overlap,
		MaxLabelWidth: layout.MaxLabelWidth,
		PerLabel:      layout.PerLabel,
		Placement:     layout.Placement,
	}

	observability.Layout().OnAxisLayout(r.Context(), len(req.Labels), int(resp.Rotation), resp.ShouldRotate, time.Since(start))
	respond(w, r, resp)
}

func (s *server) width(w http.ResponseWriter, r *http.Request) {
	req := &WidthRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	widths := labels.Widths(s.measurer, req.Labels, req.Font)
	var widest float64
	for _, v := range widths {
		widest = max(widest, v)
	}
	respond(w, r, &WidthResponse{Widths: widths, Max: widest})
}

func (s *server) truncate(w http.ResponseWriter, r *http.Request) {
	req := &TruncateRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	out := labels.TruncateText(s.measurer, req.Text, req.MaxWidth, req.Font)
	respond(w, r, &TruncateResponse{Text: out, Truncated: out != req.Text})
}

func formatValue(w http.ResponseWriter, r *http.Request) {
	req := &FormatValueRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	var text string
	if req.kind == format.Number && req.Locale != "" {
		text = format.FormatNumber(req.Value, req.Locale)
	} else {
		text = format.FormatValue(req.Value, req.kind)
	}
	observability.Layout().OnFormat(r.Context(), string(req.kind), 1)
	respond(w, r, &FormattedResponse{Text: text})
}

func formatDate(w http.ResponseWriter, r *http.Request) {
	req := &FormatDateRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	observability.Layout().OnFormat(r.Context(), "date-"+string(req.kind), 1)
	respond(w, r, &FormattedResponse{Text: format.FormatDate(req.date, req.kind)})
}

func palette(w http.ResponseWriter, r *http.Request) {
	req := &PaletteRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, &PaletteResponse{Colors: colors.Palette(req.Base, req.Count)})
}

func ticks(w http.ResponseWriter, r *http.Request) {
	req := &TicksRequest{}
	if err := render.Bind(r, req); err != nil {
		fail(w, r, err)
		return
	}
	sc := scale.New(scale.ParseKind(req.Kind), req.Domain, req.Range)
	resp := &TicksResponse{Ticks: sc.Ticks(req.Count)}
	resp.Positions = make([]float64, len(resp.Ticks))
	for i, t := range resp.Ticks {
		resp.Positions[i] = sc.Map(t)
	}
	respond(w, r, resp)
}

func (s *server) getTheme(w http.ResponseWriter, r *http.Request) {
	respond(w, r, &ThemeResponse{Theme: s.theme})
}
