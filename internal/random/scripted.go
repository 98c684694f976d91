package random

// Scripted replays queued draws in order. Once a queue is empty it returns
// the matching default, so a test only scripts the draws it cares about.
type Scripted struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64
	DefaultInt   int
}

// Float64 pops the next queued float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.DefaultFloat
	}
	f := s.Floats[0]
	s.Floats = s.Floats[1:]
	return f
}

// IntN pops the next queued int, reduced modulo n.
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	v := s.DefaultInt
	if len(s.Ints) > 0 {
		v = s.Ints[0]
		s.Ints = s.Ints[1:]
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
