// internal/utils/math.go
package utils

// WrapCoord переносит координату на противоположный край отрезка [0, size].
// Выход за 0 даёт size-1, выход за size даёт 1.
func WrapCoord(v, size float64) float64 {
	if v < 0 {
		return size - 1
	}
	if v > size {
		return 1
	}
	return v
}

// InBounds проверяет, что точка лежит внутри прямоугольника [0,w]x[0,h].
func InBounds(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}
