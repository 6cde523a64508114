package relationships

// Professor exists independently of any department.
type Professor struct {
	Name string
}

// Department aggregates professors it does not own.
type Department struct {
	Name       string
	professors []*Professor
}

func NewDepartment(name string, professors ...*Professor) *Department {
	return &Department{Name: name, professors: professors}
}

func (d *Department) Hire(p *Professor) {
	d.professors = append(d.professors, p)
}

func (d *Department) Professors() []*Professor {
	out := make([]*Professor, len(d.professors))
	copy(out, d.professors)
	return out
}

// Dissolve closes the department. The professors are handed back to the
// caller, still alive.
func (d *Department) Dissolve() []*Professor {
	released := d.professors
	d.professors = nil
	return released
}
