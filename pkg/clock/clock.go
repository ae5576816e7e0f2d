package clock

import "time"

// Clock abstracts wall-clock reads so expiry boundary conditions stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns the process-wide UTC clock.
func System() Clock {
	return systemClock{}
}

// Fixed returns a clock pinned to the given instant.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time {
	return f.at
}
