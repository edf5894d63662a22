package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mokiat/gog/opt"
)

var ErrInvalidParam = errors.New("invalid parameter")

// Params holds the settings a page passes through its URL query.
type Params struct {
	Color       opt.T[string]
	FoV         opt.T[float64]
	Damping     opt.T[bool]
	Wireframe   opt.T[bool]
	ControlsURL opt.T[string]
}

const (
	ParamColor     = "color"
	ParamFoV       = "fov"
	ParamDamping   = "damping"
	ParamWireframe = "wireframe"
	ParamControls  = "controls"
)

func ParseParams(values url.Values) (Params, error) {
	var result Params
	if v := values.Get(ParamColor); v != "" {
		result.Color = opt.V(v)
	}
	if v := values.Get(ParamFoV); v != "" {
		fov, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidParam, ParamFoV, v, err)
		}
		if fov <= 0 || fov >= 180 {
			return Params{}, fmt.Errorf("%w: %s=%q out of range (0, 180)", ErrInvalidParam, ParamFoV, v)
		}
		result.FoV = opt.V(fov)
	}
	flags := []struct {
		name   string
		target *opt.T[bool]
	}{
		{ParamDamping, &result.Damping},
		{ParamWireframe, &result.Wireframe},
	}
	for _, flag := range flags {
		v := values.Get(flag.name)
		if v == "" {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidParam, flag.name, v, err)
		}
		*flag.target = opt.V(on)
	}
	if v := values.Get(ParamControls); v != "" {
		result.ControlsURL = opt.V(v)
	}
	return result, nil
}
