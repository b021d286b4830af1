// Package vecmath содержит операции над векторами признаков.
package vecmath

import (
	"math"

	"github.com/viant/vec/search"
)

// Magnitude возвращает L2-норму вектора.
func Magnitude(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Normalize возвращает копию вектора, приведённую к единичной L2-норме.
// Нулевой вектор возвращается без изменений. Операция идемпотентна,
// исходный срез не модифицируется.
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)

	mag := Magnitude(v)
	if mag == 0 {
		return out
	}

	inv := 1 / mag
	for i := range out {
		out[i] *= inv
	}
	return out
}

// CosineSimilarity возвращает косинусное сходство двух векторов
// с заранее вычисленными магнитудами.
func CosineSimilarity(a, b []float32, magA, magB float32) float32 {
	return 1 - search.Float32s(a).CosineDistanceWithMagnitudesNeon(b, magA, magB)
}

// IsFinite проверяет, что все компоненты вектора конечны.
func IsFinite(v []float32) bool {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
