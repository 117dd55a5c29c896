package raster

import "math"

// ScreenVertex is a vertex after the viewport transform: pixel coordinates,
// NDC depth, and straight RGBA color in [0,1].
type ScreenVertex struct {
	X, Y, Z float64
	Color   [4]float64
}

// RasterizeTriangle rasterizes a single triangle with a z-buffer and
// per-vertex color interpolation. Both windings are drawn.
//
// Zero allocation in the inner loop.
func RasterizeTriangle(fb *FrameBuffer, a, b, c *ScreenVertex) {
	x0, y0, z0 := a.X, a.Y, a.Z
	x1, y1, z1 := b.X, b.Y, b.Z
	x2, y2, z2 := c.X, c.Y, c.Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Pixel centers
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z >= fb.ZBuf[zIdx] {
				continue
			}

			ca := w0*a.Color[3] + w1*b.Color[3] + w2*c.Color[3]
			if ca < 1.0/255 {
				continue
			}
			fb.ZBuf[zIdx] = z

			cr := w0*a.Color[0] + w1*b.Color[0] + w2*c.Color[0]
			cg := w0*a.Color[1] + w1*b.Color[1] + w2*c.Color[1]
			cb := w0*a.Color[2] + w1*b.Color[2] + w2*c.Color[2]

			pxIdx := zIdx * 4
			if ca >= 1 {
				fb.Color[pxIdx] = clamp255(cr * 255)
				fb.Color[pxIdx+1] = clamp255(cg * 255)
				fb.Color[pxIdx+2] = clamp255(cb * 255)
				fb.Color[pxIdx+3] = 255
				continue
			}
			// Source-over onto whatever is already there.
			inv := 1 - ca
			fb.Color[pxIdx] = clamp255(cr*255*ca + float64(fb.Color[pxIdx])*inv)
			fb.Color[pxIdx+1] = clamp255(cg*255*ca + float64(fb.Color[pxIdx+1])*inv)
			fb.Color[pxIdx+2] = clamp255(cb*255*ca + float64(fb.Color[pxIdx+2])*inv)
			fb.Color[pxIdx+3] = clamp255(ca*255 + float64(fb.Color[pxIdx+3])*inv)
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
