package viewer

import (
	"log/slog"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/box-viewer/schema"
)

type Config struct {
	FoV  dprec.Angle
	Near float64
	Far  float64

	// CameraPosition is applied on every Start.
	CameraPosition Vec3Update

	LightColor     Color
	LightIntensity float64
	LightPosition  dprec.Vec3

	Box         BoxGeometry
	ObjectColor Color
	Wireframe   bool

	Orbit OrbitOptions

	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		FoV:  dprec.Degrees(75),
		Near: 0.1,
		Far:  1000,
		CameraPosition: Vec3Update{
			Z: opt.V(2.0),
		},
		LightColor:     White,
		LightIntensity: 2,
		LightPosition:  dprec.NewVec3(15, 10, 0),
		Box: BoxGeometry{
			Width:  3,
			Height: 1,
			Depth:  1,
		},
		ObjectColor: DefaultGray,
		Orbit: OrbitOptions{
			DampingFactor: 0.05,
		},
	}
}

// Apply overrides the config with the parameters the page specified.
func (c *Config) Apply(params schema.Params) error {
	if params.Color.Specified {
		color, err := ParseColor(params.Color.Value)
		if err != nil {
			return err
		}
		c.ObjectColor = color
	}
	if params.FoV.Specified {
		c.FoV = dprec.Degrees(params.FoV.Value)
	}
	if params.Damping.Specified {
		c.Orbit.EnableDamping = params.Damping.Value
	}
	if params.Wireframe.Specified {
		c.Wireframe = params.Wireframe.Value
	}
	return nil
}
