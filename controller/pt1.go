package controller

// Pt1 is a first-order (exponential) low-pass filter with time constant Tc
// seconds, ticked at a fixed period.
type Pt1 struct {
	Tc    float32
	value float32
	init  bool
}

// NewPt1 returns a Pt1 with the given time constant.
func NewPt1(tc float32) Pt1 { return Pt1{Tc: tc} }

// Reset forces the filter's output to v, as if it had settled there.
func (p *Pt1) Reset(v float32) {
	p.value = v
	p.init = true
}

// Tick advances the filter by periodSeconds toward input v and returns the
// new filtered value. A zero or negative Tc makes the filter track input
// exactly (no smoothing).
func (p *Pt1) Tick(v float32, periodSeconds float32) float32 {
	if !p.init {
		p.value = v
		p.init = true
		return p.value
	}
	if p.Tc <= 0 {
		p.value = v
		return p.value
	}
	alpha := periodSeconds / (p.Tc + periodSeconds)
	p.value += alpha * (v - p.value)
	return p.value
}

// Value returns the filter's current output without ticking it.
func (p Pt1) Value() float32 { return p.value }
