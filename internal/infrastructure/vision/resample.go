package vision

import "image"

// resampleBilinear растягивает карту значений до целевого размера
// билинейной интерполяцией.
func resampleBilinear(values []float64, srcW, srcH, dstW, dstH int) []float64 {
	out := make([]float64, dstW*dstH)
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return out
	}
	for y := 0; y < dstH; y++ {
		fy := 0.0
		if dstH > 1 {
			fy = float64(y) * float64(srcH-1) / float64(dstH-1)
		}
		y0 := int(fy)
		y1 := y0 + 1
		if y1 >= srcH {
			y1 = srcH - 1
		}
		wy := fy - float64(y0)

		for x := 0; x < dstW; x++ {
			fx := 0.0
			if dstW > 1 {
				fx = float64(x) * float64(srcW-1) / float64(dstW-1)
			}
			x0 := int(fx)
			x1 := x0 + 1
			if x1 >= srcW {
				x1 = srcW - 1
			}
			wx := fx - float64(x0)

			top := values[y0*srcW+x0]*(1-wx) + values[y0*srcW+x1]*wx
			bottom := values[y1*srcW+x0]*(1-wx) + values[y1*srcW+x1]*wx
			out[y*dstW+x] = top*(1-wy) + bottom*wy
		}
	}
	return out
}

// grayscale переводит изображение в построчную карту яркости по Rec. 601.
func grayscale(img image.Image) []float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out[y*w+x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 65535.0
		}
	}
	return out
}
