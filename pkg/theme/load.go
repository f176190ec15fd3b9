package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/errors"
)

// Format is a theme file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported theme file %q (must be .json or .toml)", path)
	}
}

// Load reads, decodes and validates the theme file at path.
func Load(path string) (*Theme, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read theme %s", path)
	}
	t, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Decode reads a theme in the given format without validating it.
func Decode(r io.Reader, format Format) (*Theme, error) {
	var t Theme
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&t); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode json theme")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode toml theme")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported theme format %q", format)
	}
	return &t, nil
}

// Encode writes t in the given format.
func Encode(w io.Writer, t *Theme, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(t)
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported theme format %q", format)
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func themeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			_, err := colors.Parse(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Validate checks that t is usable for rendering: a known mode, a font
// family, positive sizes and parseable core colors.
func (t *Theme) Validate() error {
	err := themeValidator().Struct(t)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidTheme, err, "validate theme")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fieldMessage(fe)
	}
	return errors.Wrap(errors.ErrCodeInvalidTheme, err, "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Theme.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "csscolor":
		return fmt.Sprintf("%s is not a valid color: %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
