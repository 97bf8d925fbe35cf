package sampler

// Sampler tracks a running empirical mean over observed reals, satisfying
// mean = (sum of observations) / trial (zero when empty).
type Sampler struct {
	trial int
	mean  float64
}

// New returns an empty Sampler.
func New() *Sampler {
	return &Sampler{}
}

// Observe folds x into the running mean: mean <- (mean*trial + x)/(trial+1).
func (s *Sampler) Observe(x float64) {
	s.mean = (s.mean*float64(s.trial) + x) / float64(s.trial+1)
	s.trial++
}

// Mean returns the current running mean, 0 if no observations have been
// made yet.
func (s *Sampler) Mean() float64 {
	return s.mean
}

// Trial returns the number of observations folded in so far.
func (s *Sampler) Trial() int {
	return s.trial
}
