package canbus

import "math"

func float32frombits(b uint32) float32 { return math.Float32frombits(b) }
func float32bits(v float32) uint32     { return math.Float32bits(v) }
func float64frombits(b uint64) float64 { return math.Float64frombits(b) }

func isFiniteF32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isFiniteF64(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
