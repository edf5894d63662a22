package viewer

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
)

// Vec3Update selects which axes of a vector to change. Unspecified axes
// keep their current value; a specified zero is applied.
type Vec3Update struct {
	X opt.T[float64]
	Y opt.T[float64]
	Z opt.T[float64]
}

// Set returns v with the specified axes replaced.
func (u Vec3Update) Set(v dprec.Vec3) dprec.Vec3 {
	if u.X.Specified {
		v.X = u.X.Value
	}
	if u.Y.Specified {
		v.Y = u.Y.Value
	}
	if u.Z.Specified {
		v.Z = u.Z.Value
	}
	return v
}

// Add returns v with the specified axes incremented.
func (u Vec3Update) Add(v dprec.Vec3) dprec.Vec3 {
	if u.X.Specified {
		v.X += u.X.Value
	}
	if u.Y.Specified {
		v.Y += u.Y.Value
	}
	if u.Z.Specified {
		v.Z += u.Z.Value
	}
	return v
}

func (u Vec3Update) IsEmpty() bool {
	return !u.X.Specified && !u.Y.Specified && !u.Z.Specified
}
