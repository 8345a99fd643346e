package params

// Store owns the live parameter record. It is not safe for concurrent use;
// all access happens on the game goroutine.
type Store struct {
	p         Params
	listeners []func(Params)
}

// NewStore returns a store holding p.
func NewStore(p Params) *Store {
	return &Store{p: p}
}

// Get returns a copy of the current parameters.
func (s *Store) Get() Params { return s.p }

// Subscribe registers fn to run after every Set.
func (s *Store) Subscribe(fn func(Params)) {
	s.listeners = append(s.listeners, fn)
}

// Set applies one change and notifies every listener before returning.
// Values are not range checked; the panel controls bound them.
func (s *Store) Set(mutate func(p *Params)) {
	mutate(&s.p)
	for _, fn := range s.listeners {
		fn(s.p)
	}
}
