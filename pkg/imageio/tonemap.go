package imageio

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// intensity keeps quantized channels strictly below 256
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma-2 encoding
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeChannel maps an averaged linear channel to an 8-bit display value
func QuantizeChannel(linear float64) int {
	return int(256 * intensity.Clamp(LinearToGamma(linear)))
}

// QuantizeColor maps a summed color to 8-bit display values
func QuantizeColor(sum core.Vec3, samplesPerPixel int) (r, g, b int) {
	scale := 1.0 / float64(samplesPerPixel)
	return QuantizeChannel(sum.X * scale),
		QuantizeChannel(sum.Y * scale),
		QuantizeChannel(sum.Z * scale)
}
