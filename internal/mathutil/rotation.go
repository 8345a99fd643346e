package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotate builds the planet orientation from three angles in degrees, applied
// as intrinsic rotations about X, then Y, then Z.
//
// The nine values are listed in mgl64's column-major storage order, so the
// returned matrix is Rz·Ry·Rx and a shader mat3 filled from them multiplies
// column vectors the same way.
func Rotate(x, y, z float64) mgl64.Mat3 {
	sx, cx := math.Sincos(mgl64.DegToRad(x))
	sy, cy := math.Sincos(mgl64.DegToRad(y))
	sz, cz := math.Sincos(mgl64.DegToRad(z))

	return mgl64.Mat3{
		cy * cz,
		cy * sz,
		-sy,

		sx*sy*cz - cx*sz,
		sx*sy*sz + cx*cz,
		sx * cy,

		cx*sy*cz + sx*sz,
		cx*sy*sz - sx*cz,
		cx * cy,
	}
}

// Float32 flattens m in storage order for upload as a shader uniform.
func Float32(m mgl64.Mat3) []float32 {
	out := make([]float32, len(m))
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
