package grid

// Linear interpolates the line through (x0, y0) and (x1, y1) at x. Coincident
// abscissas return y0.
func Linear(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}

	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Bilinear weights four corner values by the fractional position (fx, fy).
// cXY names the corner: c10 is at fx == 1, fy == 0.
func Bilinear(c00, c10, c01, c11, fx, fy float64) float64 {
	return c00*(1-fx)*(1-fy) + c10*fx*(1-fy) + c01*(1-fx)*fy + c11*fx*fy
}

// BilinearRowFirst interpolates along x on both y edges, then along y.
func BilinearRowFirst(c00, c10, c01, c11, fx, fy float64) float64 {
	y0 := Linear(0, c00, 1, c10, fx)
	y1 := Linear(0, c01, 1, c11, fx)

	return Linear(0, y0, 1, y1, fy)
}

// BilinearColumnFirst interpolates along y on both x edges, then along x.
func BilinearColumnFirst(c00, c10, c01, c11, fx, fy float64) float64 {
	x0 := Linear(0, c00, 1, c01, fy)
	x1 := Linear(0, c10, 1, c11, fy)

	return Linear(0, x0, 1, x1, fx)
}
