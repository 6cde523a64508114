package relationships

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssociation(t *testing.T) {
	teacher := NewTeacher("Ms. Smith")
	alice := NewStudent("Alice")
	bob := NewStudent("Bob")

	teacher.Teach(bob)
	teacher.Teach(alice)

	assert.Equal(t, []string{"Alice", "Bob"}, teacher.Students())
	assert.Equal(t, []string{"Ms. Smith"}, alice.Teachers())

	teacher.Drop(alice)
	assert.Equal(t, []string{"Bob"}, teacher.Students())
	assert.Empty(t, alice.Teachers())
	assert.Equal(t, "Alice", alice.Name, "dropping the link leaves the student intact")
}

func TestAggregation(t *testing.T) {
	turing := &Professor{Name: "Turing"}
	hopper := &Professor{Name: "Hopper"}
	cs := NewDepartment("Computer Science", turing)
	cs.Hire(hopper)

	assert.Len(t, cs.Professors(), 2)

	released := cs.Dissolve()
	assert.Empty(t, cs.Professors())
	assert.Equal(t, []*Professor{turing, hopper}, released)
	assert.Equal(t, "Turing", turing.Name)
}

func TestComposition(t *testing.T) {
	h := NewHouse("1 Main St", RoomSpec{"Kitchen", 12}, RoomSpec{"Bedroom", 16})

	assert.Equal(t, 28.0, h.TotalArea())
	rooms := h.Rooms()
	assert.Equal(t, "Kitchen (12 m²)", rooms[0].String())

	h.Demolish()
	assert.Empty(t, h.Rooms())
	assert.Zero(t, h.TotalArea())
}

func TestInheritanceByEmbedding(t *testing.T) {
	rex := Dog{Animal{Name: "Rex"}}
	tom := Cat{Animal{Name: "Tom"}}

	assert.Equal(t, "Rex is breathing", rex.Breathe())
	assert.Equal(t, []string{"Rex says Woof", "Tom says Meow"}, Chorus(rex, tom))
}
