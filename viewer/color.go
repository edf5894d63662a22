package viewer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is a packed 0xRRGGBB value.
type Color uint32

const (
	White       Color = 0xffffff
	DefaultGray Color = 0x404040
)

// ParseColor accepts "#rgb", "#rrggbb" and CSS color names.
func ParseColor(value string) (Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(value, "#") {
		if len(value) != 4 && len(value) != 7 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, value)
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrUnknownColor, value, err)
		}
		return fromColorful(c), nil
	}
	named, ok := colornames.Map[value]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, value)
	}
	c, _ := colorful.MakeColor(named)
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the components normalized to [0, 1].
func (c Color) RGB() (r, g, b float64) {
	cc := c.colorful()
	return cc.R, cc.G, cc.B
}

func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64((c>>16)&0xff) / 255.0,
		G: float64((c>>8)&0xff) / 255.0,
		B: float64(c&0xff) / 255.0,
	}
}
