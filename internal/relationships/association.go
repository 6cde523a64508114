package relationships

import "sort"

// Teacher and Student know about each other but neither owns the other.
type Teacher struct {
	Name     string
	students map[string]*Student
}

type Student struct {
	Name     string
	teachers map[string]*Teacher
}

func NewTeacher(name string) *Teacher {
	return &Teacher{Name: name, students: map[string]*Student{}}
}

func NewStudent(name string) *Student {
	return &Student{Name: name, teachers: map[string]*Teacher{}}
}

// Teach links both sides of the association.
func (t *Teacher) Teach(s *Student) {
	t.students[s.Name] = s
	s.teachers[t.Name] = t
}

// Drop removes the link on both sides. Neither object is destroyed.
func (t *Teacher) Drop(s *Student) {
	delete(t.students, s.Name)
	delete(s.teachers, t.Name)
}

func (t *Teacher) Students() []string { return sortedKeys(t.students) }
func (s *Student) Teachers() []string { return sortedKeys(s.teachers) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
