package config

import "math"

// ScaledTo returns the physics constants rescaled for a different tick rate.
//
// The constants are per-tick quantities, so running at another rate without
// rescaling changes how the game feels. Velocities scale with the step
// ratio k = base/rate, accelerations with k², and the friction factor is
// compounded k times per tick so damping per second is unchanged.
func (p PhysicsConfig) ScaledTo(tickRate int) PhysicsConfig {
	if tickRate <= 0 || p.BaseTickRate <= 0 || tickRate == p.BaseTickRate {
		return p
	}

	k := float64(p.BaseTickRate) / float64(tickRate)
	return PhysicsConfig{
		Gravity:      p.Gravity * k * k,
		Friction:     math.Pow(p.Friction, k),
		MoveSpeed:    p.MoveSpeed * k * k,
		MaxSpeed:     p.MaxSpeed * k,
		JumpForce:    p.JumpForce * k,
		BaseTickRate: tickRate,
	}
}
