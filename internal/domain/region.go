package domain

// FullRegionLabel — метка синтетического региона, покрывающего всё изображение.
const FullRegionLabel = "full"

// Region описывает регион-кандидат на изображении.
// Координаты в пикселях, (X1,Y1) — левый верхний угол, X2 > X1, Y2 > Y1.
type Region struct {
	Label      string
	Confidence float32
	X1, Y1     int
	X2, Y2     int
}

func NewRegion(label string, confidence float32, x1, y1, x2, y2 int) *Region {
	return &Region{
		Label:      label,
		Confidence: confidence,
		X1:         x1,
		Y1:         y1,
		X2:         x2,
		Y2:         y2,
	}
}

// FullRegion возвращает регион, покрывающий изображение целиком.
func FullRegion(width, height int) *Region {
	return NewRegion(FullRegionLabel, 1.0, 0, 0, width, height)
}

// Clamp ограничивает координаты региона границами изображения
// [0, width-1] x [0, height-1]. Возвращает false, если после
// ограничения регион вырождается в нулевую площадь.
func (r *Region) Clamp(width, height int) bool {
	if r.X1 < 0 {
		r.X1 = 0
	}
	if r.Y1 < 0 {
		r.Y1 = 0
	}
	if r.X2 > width-1 {
		r.X2 = width - 1
	}
	if r.Y2 > height-1 {
		r.Y2 = height - 1
	}

	return r.X2 > r.X1 && r.Y2 > r.Y1
}
