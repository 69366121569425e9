// refs: github.com/fogleman/nes
package famines

import "math"

type Filter interface {
	Step(x float32) float32
}

// FilterChain applies filters in sequence.
type FilterChain []Filter

func (fc FilterChain) Step(x float32) float32 {
	for i := range fc {
		x = fc[i].Step(x)
	}
	return x
}

// firstOrderFilter implements y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1]
type firstOrderFilter struct {
	B0, B1, A1 float32
	prevX      float32
	prevY      float32
}

func (f *firstOrderFilter) Step(x float32) float32 {
	y := f.B0*x + f.B1*f.prevX - f.A1*f.prevY
	f.prevX = x
	f.prevY = y
	return y
}

func LowPassFilter(sampleRate, cutoffFreq float32) Filter {
	c := float64(sampleRate) / math.Pi / float64(cutoffFreq)
	a0i := 1 / (1 + c)
	return &firstOrderFilter{
		B0: float32(a0i),
		B1: float32(a0i),
		A1: float32((1 - c) * a0i),
	}
}

func HighPassFilter(sampleRate, cutoffFreq float32) Filter {
	c := float64(sampleRate) / math.Pi / float64(cutoffFreq)
	a0i := 1 / (1 + c)
	return &firstOrderFilter{
		B0: float32(c * a0i),
		B1: float32(-c * a0i),
		A1: float32((1 - c) * a0i),
	}
}
