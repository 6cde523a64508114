package principles

// Workable and Eater replace one fat Worker interface.
type Workable interface {
	Work() string
}

type Eater interface {
	Eat() string
}

type Human struct{ Name string }

func (h Human) Work() string { return h.Name + " is working" }
func (h Human) Eat() string  { return h.Name + " is eating lunch" }

// Robot works but has no reason to implement Eat.
type Robot struct{ Model string }

func (r Robot) Work() string { return r.Model + " is assembling parts" }

// Shift runs every worker.
func Shift(workers ...Workable) []string {
	out := make([]string, len(workers))
	for i, w := range workers {
		out[i] = w.Work()
	}
	return out
}

// LunchBreak only concerns those who eat.
func LunchBreak(eaters ...Eater) []string {
	out := make([]string, len(eaters))
	for i, e := range eaters {
		out[i] = e.Eat()
	}
	return out
}
