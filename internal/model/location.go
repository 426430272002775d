package model

import "math/rand"

// Location представляет координаты на игровой карте.
// Value type, передаётся по значению (immutable).
type Location struct {
	X int32
	Y int32
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y int32) Location {
	return Location{X: x, Y: y}
}

// WithCoordinates возвращает новый Location с обновлёнными координатами (immutable pattern).
func (l Location) WithCoordinates(x, y int32) Location {
	l.X = x
	l.Y = y
	return l
}

// Scatter возвращает новый Location, смещённый на случайную дельту
// в диапазоне [-radius, radius] по каждой оси. radius <= 0 возвращает
// исходную точку без смещения.
func (l Location) Scatter(radius int32) Location {
	if radius <= 0 {
		return l
	}
	span := radius*2 + 1
	l.X += rand.Int31n(span) - radius
	l.Y += rand.Int31n(span) - radius
	return l
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt для производительности).
func (l Location) DistanceSquared(other Location) int64 {
	dx := int64(l.X - other.X)
	dy := int64(l.Y - other.Y)
	return dx*dx + dy*dy
}
