package character

// defaultMaxSteps bounds how many ticks one frame may run after a stall.
const defaultMaxSteps = 5

// Accumulator turns variable frame times into whole fixed ticks.
type Accumulator struct {
	Step     float64
	MaxSteps int

	remainder float64
}

func NewAccumulator(step float64) *Accumulator {
	return &Accumulator{Step: step, MaxSteps: defaultMaxSteps}
}

// Advance adds frameDt and calls tick once per whole step. Time beyond
// MaxSteps ticks is dropped. It returns the number of ticks run.
func (acc *Accumulator) Advance(frameDt float64, tick func(dt float64)) int {
	if acc == nil || acc.Step <= 0 || tick == nil {
		return 0
	}
	maxSteps := acc.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	acc.remainder += frameDt
	n := 0
	for acc.remainder >= acc.Step && n < maxSteps {
		tick(acc.Step)
		acc.remainder -= acc.Step
		n++
	}
	if n == maxSteps && acc.remainder >= acc.Step {
		acc.remainder = 0
	}
	return n
}

// Alpha is the fraction of a step left over, for render interpolation.
func (acc *Accumulator) Alpha() float64 {
	if acc == nil || acc.Step <= 0 {
		return 0
	}
	return acc.remainder / acc.Step
}
