package render

// Plot writes a single pixel
func (f *Frame) Plot(x, y int, c RGB) {
	f.Set(x, y, c)
}

// FillCircle draws a filled disc of radius r centered on (cx, cy)
// A pixel is inside when dx²+dy² <= r²; radius below 1 plots the center only
func (f *Frame) FillCircle(cx, cy, r int, c RGB) {
	if r < 1 {
		f.Set(cx, cy, c)
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= f.height {
			continue
		}
		// Horizontal span for this row
		span := 0
		for span+1 <= r && (span+1)*(span+1)+dy*dy <= rr {
			span++
		}
		x0 := max(cx-span, 0)
		x1 := min(cx+span, f.width-1)
		row := f.pix[y*f.width : (y+1)*f.width]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
	}
}

// Circle draws a 1-pixel outline of radius r centered on (cx, cy) (midpoint algorithm)
func (f *Frame) Circle(cx, cy, r int, c RGB) {
	if r < 1 {
		f.Set(cx, cy, c)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		f.Set(cx+x, cy+y, c)
		f.Set(cx+y, cy+x, c)
		f.Set(cx-y, cy+x, c)
		f.Set(cx-x, cy+y, c)
		f.Set(cx-x, cy-y, c)
		f.Set(cx-y, cy-x, c)
		f.Set(cx+y, cy-x, c)
		f.Set(cx+x, cy-y, c)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}
