package gallery

import (
	"math"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

// DecayCurve maps decay progress p in [0, 1] to image opacity, edge emergence
// and fabric transformation progress:
//
//	[0, 0.3]   image fades out while edges emerge
//	(0.3, 0.7] edges fully visible, fabric pulls in up to half strength
//	(0.7, 1]   edges fade while the pull completes
func DecayCurve(p float64) (opacity, emergence, progress float64) {
	p = vmath.Clamp01(p)
	emergeEnd := parameter.GalleryDecayEmergeEnd
	integrateEnd := parameter.GalleryDecayIntegrateEnd
	half := parameter.GalleryIntegrateTarget

	switch {
	case p <= emergeEnd:
		d := p / emergeEnd
		return math.Pow(1-d, parameter.GalleryOpacityExponent), math.Pow(d, parameter.GalleryEmergenceExponent), 0
	case p <= integrateEnd:
		return 0, 1, (p - emergeEnd) / (integrateEnd - emergeEnd) * half
	default:
		f := (p - integrateEnd) / (1 - integrateEnd)
		return 0, math.Pow(1-f, parameter.GalleryFadeExponent), half + f*(1-half)
	}
}

// RelaxCurve eases transformation progress from 1 back to 0 over relax progress p
func RelaxCurve(p float64) float64 {
	return 1 - vmath.EaseOutCubic(p)
}
