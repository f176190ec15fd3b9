// Package fonts provides the embedded TrueType fonts used for text measurement.
//
// The fonts are the Go font family shipped with golang.org/x/image, so precise
// measurement works in any environment without system font lookup. A CSS-style
// family list ("'Fira Code', monospace") is resolved to the closest embedded
// variant by [Resolve].
package fonts

import (
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is the family list used when the caller supplies none.
const DefaultFamily = "system-ui, -apple-system, sans-serif"

// Variant identifies one embedded font file.
type Variant int

const (
	Regular Variant = iota
	Bold
	Mono
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Bold:
		return "bold"
	case Mono:
		return "mono"
	default:
		return "regular"
	}
}

// TTF returns the raw TrueType data for v.
func TTF(v Variant) []byte {
	switch v {
	case Bold:
		return gobold.TTF
	case Mono:
		return gomono.TTF
	default:
		return goregular.TTF
	}
}

var monoHints = []string{"mono", "courier", "consolas", "menlo", "code"}

// Resolve maps a CSS font-family list to an embedded variant.
// Entries are checked left to right; the first one naming a monospace or bold
// face wins, anything else resolves to Regular.
func Resolve(family string) Variant {
	for _, entry := range strings.Split(family, ",") {
		name := strings.ToLower(strings.Trim(strings.TrimSpace(entry), `'"`))
		for _, hint := range monoHints {
			if strings.Contains(name, hint) {
				return Mono
			}
		}
		if strings.Contains(name, "bold") {
			return Bold
		}
	}
	return Regular
}

// Parsed fonts are computed once per variant on first access.
var (
	parseOnce [3]sync.Once
	parsed    [3]*truetype.Font
	parseErr  [3]error
)

// Parse returns the parsed font for v. The result is shared and read-only.
func Parse(v Variant) (*truetype.Font, error) {
	if v < Regular || v > Mono {
		v = Regular
	}
	parseOnce[v].Do(func() {
		parsed[v], parseErr[v] = truetype.Parse(TTF(v))
	})
	return parsed[v], parseErr[v]
}

// ForFamily resolves family and returns the parsed embedded font.
func ForFamily(family string) (*truetype.Font, error) {
	if strings.TrimSpace(family) == "" {
		family = DefaultFamily
	}
	return Parse(Resolve(family))
}
