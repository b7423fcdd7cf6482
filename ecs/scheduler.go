package ecs

// System is one step of the per-frame update.
type System interface {
	Update(w *World)
}

// Scheduler runs its systems in the order they were added, once per tick.
// Later systems see the writes of earlier ones within the same tick, which is
// how input reaches the camera and the spin and orbit rotations reach the
// world matrices before drawing.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys. A nil interface is ignored.
func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.systems = append(s.systems, sys)
}

// Len reports how many systems will run.
func (s *Scheduler) Len() int {
	return len(s.systems)
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}
