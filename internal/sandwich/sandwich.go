package sandwich

// Sandwich is a plain record. Toppings keep the order they were added in.
type Sandwich struct {
	Taste    string
	Toppings []string
}

func New(taste string, toppings []string) *Sandwich {
	return &Sandwich{
		Taste:    taste,
		Toppings: toppings,
	}
}

// AddTopping appends toppings in place.
func (s *Sandwich) AddTopping(toppings ...string) {
	s.Toppings = append(s.Toppings, toppings...)
}

// Ideal returns a new delicious sandwich without toppings. Every call gives a fresh instance.
func Ideal() *Sandwich {
	return New("delicious", make([]string, 0))
}
