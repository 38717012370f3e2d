package game

import "math"

// Ship physics constants, in world pixels per tick at 60 TPS.
const (
	ShipAccel    = 0.6
	ShipMaxSpeed = 5.0
	ShipDrag     = 0.92
	BoostFactor  = 3.5 // multiplies accel and top speed while boosting
)

// ShipPhysics tracks position and velocity for the player ship.
type ShipPhysics struct {
	X, Y           float64
	VX, VY         float64
	FaceDX, FaceDY int // last thrust direction, for the sprite heading
	Boosting       bool

	Accel    float64 // thrust added per tick
	MaxSpeed float64 // velocity magnitude cap without boost
	Drag     float64 // velocity multiplier per tick (1.0 = no drag)
}

// NewShipPhysics returns a ship at rest at (x, y) with default handling.
func NewShipPhysics(x, y float64) ShipPhysics {
	return ShipPhysics{X: x, Y: y, Accel: ShipAccel, MaxSpeed: ShipMaxSpeed, Drag: ShipDrag}
}

// Speed returns the current velocity magnitude.
func (p *ShipPhysics) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// SpeedCap is the top speed for the current boost state.
func (p *ShipPhysics) SpeedCap() float64 {
	if p.Boosting {
		return p.MaxSpeed * BoostFactor
	}
	return p.MaxSpeed
}

// ApplyThrust adds acceleration in the given direction (-1, 0, or 1 per axis).
// Diagonal thrust is normalized so it's not sqrt(2) faster.
func (p *ShipPhysics) ApplyThrust(dx, dy int, boost bool) {
	p.Boosting = boost
	if dx == 0 && dy == 0 {
		return
	}
	p.FaceDX = dx
	p.FaceDY = dy

	a := p.Accel
	if boost {
		a *= BoostFactor
	}
	ax := float64(dx) * a
	ay := float64(dy) * a
	if dx != 0 && dy != 0 {
		ax /= math.Sqrt2
		ay /= math.Sqrt2
	}
	p.VX += ax
	p.VY += ay
}

// Tick advances physics by one step: apply drag, cap speed, move position.
func (p *ShipPhysics) Tick() {
	p.VX *= p.Drag
	p.VY *= p.Drag

	if speed, limit := p.Speed(), p.SpeedCap(); speed > limit {
		scale := limit / speed
		p.VX *= scale
		p.VY *= scale
	}

	p.X += p.VX
	p.Y += p.VY

	// Kill near-zero velocity
	if math.Abs(p.VX) < 0.01 {
		p.VX = 0
	}
	if math.Abs(p.VY) < 0.01 {
		p.VY = 0
	}
}
