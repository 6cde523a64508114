package relationships

import "fmt"

// Room only exists as part of a House; it has no exported constructor.
type Room struct {
	name string
	area float64
}

func (r Room) Name() string   { return r.name }
func (r Room) Area() float64  { return r.area }
func (r Room) String() string { return fmt.Sprintf("%s (%.0f m²)", r.name, r.area) }

// House creates and owns its rooms. Demolishing the house ends them too.
type House struct {
	Address string
	rooms   []Room
}

// RoomSpec describes a room to build.
type RoomSpec struct {
	Name string
	Area float64
}

func NewHouse(address string, specs ...RoomSpec) *House {
	h := &House{Address: address}
	for _, s := range specs {
		h.rooms = append(h.rooms, Room{name: s.Name, area: s.Area})
	}
	return h
}

// Rooms returns copies; callers cannot reach the house's own rooms.
func (h *House) Rooms() []Room {
	out := make([]Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

func (h *House) TotalArea() float64 {
	var total float64
	for _, r := range h.rooms {
		total += r.area
	}
	return total
}

func (h *House) Demolish() {
	h.rooms = nil
}
