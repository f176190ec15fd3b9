package api

import (
	"net/http"
	"time"

	"github.com/matzehuels/loracharts/pkg/buildinfo"
	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/scale"
	"github.com/matzehuels/loracharts/pkg/theme"
)

// Request limits beyond the label limits in pkg/errors.
const (
	MaxPaletteColors = 256
	MaxTicks         = 1000
)

func validateFont(f labels.Font) error {
	return errors.ValidateFontSize(f.Size)
}

func validateWidth(name string, v float64) error {
	if err := errors.ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s cannot be negative", name)
	}
	return nil
}

// RotationRequest asks for the label angle of a category axis.
// Without MaxLabelWidth the labels are measured with Font.
type RotationRequest struct {
	Width         float64     `json:"width"`
	Labels        []string    `json:"labels"`
	MaxLabelWidth *float64    `json:"max_label_width,omitempty"`
	Font          labels.Font `json:"font"`
	Padding       *float64    `json:"padding,omitempty"`
	Rotation      *int        `json:"rotation,omitempty"`
	AutoRotate    *bool       `json:"auto_rotate,omitempty"`
}

// Bind validates the request.
func (req *RotationRequest) Bind(r *http.Request) error {
	if err := validateWidth("width", req.Width); err != nil {
		return err
	}
	if err := errors.ValidateLabels(req.Labels); err != nil {
		return err
	}
	if req.MaxLabelWidth != nil {
		if err := validateWidth("max_label_width", *req.MaxLabelWidth); err != nil {
			return err
		}
	}
	if req.Padding != nil {
		if err := errors.ValidateFinite("padding", *req.Padding); err != nil {
			return err
		}
	}
	if req.Rotation != nil && !labels.Rotation(*req.Rotation).Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "rotation must be 0, -45 or -90, got %d", *req.Rotation)
	}
	return validateFont(req.Font)
}

// RotationResponse is the label decision for one axis.
type RotationResponse struct {
	Rotation      labels.Rotation  `json:"rotation"`
	ShouldRotate  bool             `json:"should_rotate"`
	MaxLabelWidth float64          `json:"max_label_width"`
	PerLabel      float64          `json:"per_label"`
	Placement     labels.Placement `json:"placement"`
}

func (*RotationResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// WidthRequest asks for the width of each label.
type WidthRequest struct {
	Labels []string    `json:"labels"`
	Font   labels.Font `json:"font"`
}

// Bind validates the request.
func (req *WidthRequest) Bind(r *http.Request) error {
	if err := errors.ValidateLabels(req.Labels); err != nil {
		return err
	}
	return validateFont(req.Font)
}

// WidthResponse holds one width per requested label and the largest one.
type WidthResponse struct {
	Widths []float64 `json:"widths"`
	Max    float64   `json:"max"`
}

func (*WidthResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// TruncateRequest asks for text shortened to fit MaxWidth.
type TruncateRequest struct {
	Text     string      `json:"text"`
	MaxWidth float64     `json:"max_width"`
	Font     labels.Font `json:"font"`
}

// Bind validates the request.
func (req *TruncateRequest) Bind(r *http.Request) error {
	if err := errors.ValidateLabels([]string{req.Text}); err != nil {
		return err
	}
	if err := validateWidth("max_width", req.MaxWidth); err != nil {
		return err
	}
	return validateFont(req.Font)
}

// TruncateResponse is the fitted text.
type TruncateResponse struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
}

func (*TruncateResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// FormatValueRequest formats one number. Locale only applies to the number kind.
type FormatValueRequest struct {
	Value  float64 `json:"value"`
	Kind   string  `json:"kind"`
	Locale string  `json:"locale,omitempty"`

	kind format.ValueKind
}

// Bind validates the request.
func (req *FormatValueRequest) Bind(r *http.Request) error {
	kind, err := format.ParseValueKind(req.Kind)
	if err != nil {
		return err
	}
	req.kind = kind
	return nil
}

// FormatDateRequest formats one date given as RFC 3339 or YYYY-MM-DD.
type FormatDateRequest struct {
	Date string `json:"date"`
	Kind string `json:"kind"`

	kind format.DateKind
	date time.Time
}

// Bind validates the request.
func (req *FormatDateRequest) Bind(r *http.Request) error {
	kind, err := format.ParseDateKind(req.Kind)
	if err != nil {
		return err
	}
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return err
	}
	req.kind, req.date = kind, date
	return nil
}

// FormattedResponse is a formatted value.
type FormattedResponse struct {
	Text string `json:"text"`
}

func (*FormattedResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// PaletteRequest asks for Count colors derived from Base.
type PaletteRequest struct {
	Base  string `json:"base"`
	Count int    `json:"count"`
}

// Bind validates the request.
func (req *PaletteRequest) Bind(r *http.Request) error {
	if _, err := colors.Parse(req.Base); err != nil {
		return err
	}
	if req.Count < 0 || req.Count > MaxPaletteColors {
		return errors.New(errors.ErrCodeInvalidInput, "count must be between 0 and %d", MaxPaletteColors)
	}
	return nil
}

// PaletteResponse lists the derived colors.
type PaletteResponse struct {
	Colors []string `json:"colors"`
}

func (*PaletteResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// TicksRequest asks for ticks over a numeric domain and their range positions.
type TicksRequest struct {
	Kind   string    `json:"kind"`
	Domain []float64 `json:"domain"`
	Range  []float64 `json:"range"`
	Count  int       `json:"count"`
}

// Bind validates the request.
func (req *TicksRequest) Bind(r *http.Request) error {
	if len(req.Domain) != 2 || len(req.Range) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "domain and range need exactly two values")
	}
	for i, v := range append(append([]float64{}, req.Domain...), req.Range...) {
		if err := errors.ValidateFinite("bound", v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "bound %d", i)
		}
	}
	if req.Count < 0 || req.Count > MaxTicks {
		return errors.New(errors.ErrCodeInvalidInput, "count must be between 0 and %d", MaxTicks)
	}
	if req.Count == 0 {
		req.Count = 10
	}
	switch k := scale.ParseKind(req.Kind); k {
	case scale.KindBand, scale.KindTime:
		return errors.New(errors.ErrCodeUnsupported, "%s scales have no numeric ticks", k)
	case scale.KindLog:
		if req.Domain[0]*req.Domain[1] <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "log domain must not include or cross zero")
		}
	}
	return nil
}

// TicksResponse pairs each tick with its position.
type TicksResponse struct {
	Ticks     []float64 `json:"ticks"`
	Positions []float64 `json:"positions"`
}

func (*TicksResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// ThemeResponse wraps the active theme.
type ThemeResponse struct {
	*theme.Theme
}

func (*ThemeResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// VersionResponse is the build metadata.
type VersionResponse struct {
	buildinfo.Info
}

func (*VersionResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

func (*HealthResponse) Render(http.ResponseWriter, *http.Request) error { return nil }
