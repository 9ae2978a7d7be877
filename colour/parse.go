package colour

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformed is returned when a colour string matches no known format.
var ErrMalformed = errors.New("malformed colour")

var (
	number = `\s*(-?\d+(?:\.\d+)?)\s*`
	hslRe  = regexp.MustCompile(`^hsl\(` + number + `,` + number + `%,` + number + `%\)$`)
	rgbRe  = regexp.MustCompile(`^rgb\(` + number + `,` + number + `,` + number + `\)$`)
)

// ParseHSL parses strings such as "hsl(210, 100%, 60%)".
func ParseHSL(s string) (colorful.Color, error) {
	m := hslRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return colorful.Color{}, fmt.Errorf("%w: %q is not hsl()", ErrMalformed, s)
	}
	v, err := parseFloats(m[1:])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return HslToRgb(v[0], v[1]/100, v[2]/100), nil
}

// ParseRGB parses "rgb(255, 195, 50)" and "#ffc332" forms.
func ParseRGB(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		return c, nil
	}

	m := rgbRe.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, fmt.Errorf("%w: %q is not rgb()", ErrMalformed, s)
	}
	v, err := parseFloats(m[1:])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	for _, ch := range v {
		if ch < 0 || ch > 255 {
			return colorful.Color{}, fmt.Errorf("%w: %q: channel %v out of range", ErrMalformed, s, ch)
		}
	}
	return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}, nil
}

// ParseAny accepts every format understood by ParseRGB and ParseHSL.
func ParseAny(s string) (colorful.Color, error) {
	if c, err := ParseRGB(s); err == nil {
		return c, nil
	}
	if c, err := ParseHSL(s); err == nil {
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformed, s)
}

// Parse resolves any supported colour string and applies alpha. Strings
// that cannot be parsed produce Fallback.
func Parse(s string, alpha float64) color.NRGBA {
	c, err := ParseAny(s)
	if err != nil {
		return Fallback
	}
	return WithAlpha(c, alpha)
}

func parseFloats(in []string) ([]float64, error) {
	out := make([]float64, len(in))
	for i, s := range in {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
