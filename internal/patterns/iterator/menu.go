package iterator

import (
	"errors"
	"fmt"
	"io"
)

// ErrMenuFull is returned when the fixed-size diner menu has no room left.
var ErrMenuFull = errors.New("menu is full")

type MenuItem struct {
	Name        string
	Description string
	Vegetarian  bool
	Price       float64
}

// Menu is the aggregate every collection exposes.
type Menu interface {
	Title() string
	CreateIterator() Iterator[MenuItem]
}

const maxDinerItems = 6

// DinerMenu stores items in a fixed-size array.
type DinerMenu struct {
	items [maxDinerItems]MenuItem
	count int
}

func NewDinerMenu() *DinerMenu {
	m := &DinerMenu{}
	_ = m.Add(MenuItem{"Vegetarian BLT", "Fakin' bacon with lettuce and tomato on whole wheat", true, 2.99})
	_ = m.Add(MenuItem{"BLT", "Bacon with lettuce and tomato on whole wheat", false, 2.99})
	_ = m.Add(MenuItem{"Soup of the day", "Soup of the day with a side of potato salad", false, 3.29})
	_ = m.Add(MenuItem{"Hotdog", "A hot dog with sauerkraut, relish, onions, topped with cheese", false, 3.05})
	return m
}

func (m *DinerMenu) Title() string { return "LUNCH" }

func (m *DinerMenu) Add(item MenuItem) error {
	if m.count >= maxDinerItems {
		return fmt.Errorf("adding %q: %w", item.Name, ErrMenuFull)
	}
	m.items[m.count] = item
	m.count++
	return nil
}

type dinerIterator struct {
	menu *DinerMenu
	pos  int
}

func (d *dinerIterator) HasNext() bool {
	return d.pos < d.menu.count
}

func (d *dinerIterator) Next() (MenuItem, error) {
	if !d.HasNext() {
		return MenuItem{}, ErrExhausted
	}
	item := d.menu.items[d.pos]
	d.pos++
	return item, nil
}

func (m *DinerMenu) CreateIterator() Iterator[MenuItem] {
	return &dinerIterator{menu: m}
}

// PancakeHouseMenu stores items in a growable slice.
type PancakeHouseMenu struct {
	items []MenuItem
}

func NewPancakeHouseMenu() *PancakeHouseMenu {
	m := &PancakeHouseMenu{}
	m.Add(MenuItem{"K&B's Pancake Breakfast", "Pancakes with scrambled eggs and toast", true, 2.99})
	m.Add(MenuItem{"Regular Pancake Breakfast", "Pancakes with fried eggs, sausage", false, 2.99})
	m.Add(MenuItem{"Blueberry Pancakes", "Pancakes made with fresh blueberries", true, 3.49})
	return m
}

func (m *PancakeHouseMenu) Title() string { return "BREAKFAST" }

func (m *PancakeHouseMenu) Add(item MenuItem) {
	m.items = append(m.items, item)
}

func (m *PancakeHouseMenu) CreateIterator() Iterator[MenuItem] {
	return FromSlice(m.items)
}

// Waitress prints menus using only their iterators.
type Waitress struct {
	menus []Menu
}

func NewWaitress(menus ...Menu) *Waitress {
	return &Waitress{menus: menus}
}

func (w *Waitress) PrintMenu(out io.Writer) {
	for _, menu := range w.menus {
		fmt.Fprintf(out, "%s\n", menu.Title())
		for item := range Seq(menu.CreateIterator()) {
			fmt.Fprintf(out, "  %s, %.2f -- %s\n", item.Name, item.Price, item.Description)
		}
	}
}

// VegetarianItems walks every menu and keeps the vegetarian dishes.
func (w *Waitress) VegetarianItems() []string {
	var names []string
	for _, menu := range w.menus {
		for item := range Seq(menu.CreateIterator()) {
			if item.Vegetarian {
				names = append(names, item.Name)
			}
		}
	}
	return names
}
