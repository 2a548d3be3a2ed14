package sim

// Step advances the simulation by one tick: gravity, pressure-to-velocity,
// the flow fixpoint, velocity-to-pressure, then the particle move pass.
// Intermediate states are not visible outside the call.
func (s *Simulator[P, V, VF]) Step() {
	var zeroP P
	s.totalDeltaP = zeroP

	s.applyGravity()
	s.pressureToVelocity()
	s.flowFixpoint()
	s.velocityToPressure()
	s.movePass()
}

// CheckpointFunc is invoked by Run after the tick numbered step (1-based).
type CheckpointFunc func(step uint) error

// Run drives an engine for the given number of ticks, calling checkpoint
// every interval ticks. Interval zero disables checkpointing.
func Run(e Engine, steps, interval uint, checkpoint CheckpointFunc) error {
	for i := uint(1); i <= steps; i++ {
		e.Step()
		if interval > 0 && i%interval == 0 && checkpoint != nil {
			if err := checkpoint(i); err != nil {
				return err
			}
		}
	}
	return nil
}
