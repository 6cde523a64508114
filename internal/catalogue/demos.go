package catalogue

import (
	"context"
	"fmt"
	"strings"

	"ooctl/internal/patterns/adapter"
	"ooctl/internal/patterns/command"
	"ooctl/internal/patterns/decorator"
	"ooctl/internal/patterns/facade"
	"ooctl/internal/patterns/factory"
	"ooctl/internal/patterns/iterator"
	"ooctl/internal/patterns/memento"
	"ooctl/internal/patterns/observer"
	"ooctl/internal/patterns/singleton"
	"ooctl/internal/patterns/strategy"
	"ooctl/internal/patterns/templatemethod"
	"ooctl/internal/principles"
	"ooctl/internal/relationships"
)

var demos = map[string]Demo{
	"association":      demoAssociation,
	"aggregation":      demoAggregation,
	"composition":      demoComposition,
	"inheritance":      demoInheritance,
	"srp":              demoSRP,
	"ocp":              demoOCP,
	"lsp":              demoLSP,
	"isp":              demoISP,
	"dip":              demoDIP,
	"strategy":         demoStrategy,
	"observer":         demoObserver,
	"decorator":        demoDecorator,
	"factory-method":   demoFactoryMethod,
	"abstract-factory": demoAbstractFactory,
	"singleton":        demoSingleton,
	"command":          demoCommand,
	"adapter":          demoAdapter,
	"facade":           demoFacade,
	"template-method":  demoTemplateMethod,
	"iterator":         demoIterator,
	"memento":          demoMemento,
}

func printAll(env *Env, lines []string) {
	for _, l := range lines {
		env.Printf("%s", l)
	}
}

func demoAssociation(ctx context.Context, env *Env) error {
	teacher := relationships.NewTeacher("Ms. Smith")
	alice := relationships.NewStudent("Alice")
	bob := relationships.NewStudent("Bob")

	teacher.Teach(alice)
	teacher.Teach(bob)
	env.Printf("%s teaches %s", teacher.Name, strings.Join(teacher.Students(), ", "))
	env.Printf("Alice is taught by %s", strings.Join(alice.Teachers(), ", "))

	teacher.Drop(alice)
	env.Printf("After dropping Alice: %s teaches %s; Alice still exists", teacher.Name, strings.Join(teacher.Students(), ", "))
	return nil
}

func demoAggregation(ctx context.Context, env *Env) error {
	turing := &relationships.Professor{Name: "Turing"}
	hopper := &relationships.Professor{Name: "Hopper"}
	cs := relationships.NewDepartment("Computer Science", turing, hopper)

	env.Printf("%s has %d professors", cs.Name, len(cs.Professors()))
	for _, p := range cs.Dissolve() {
		env.Printf("Department dissolved, %s is still around", p.Name)
	}
	return nil
}

func demoComposition(ctx context.Context, env *Env) error {
	h := relationships.NewHouse("1 Main St",
		relationships.RoomSpec{Name: "Kitchen", Area: 12},
		relationships.RoomSpec{Name: "Bedroom", Area: 16},
	)
	for _, r := range h.Rooms() {
		env.Printf("%s has %s", h.Address, r)
	}
	env.Printf("Total area: %.0f m²", h.TotalArea())

	h.Demolish()
	env.Printf("Demolished: %d rooms remain", len(h.Rooms()))
	return nil
}

func demoInheritance(ctx context.Context, env *Env) error {
	rex := relationships.Dog{Animal: relationships.Animal{Name: "Rex"}}
	tom := relationships.Cat{Animal: relationships.Animal{Name: "Tom"}}

	env.Printf("%s", rex.Breathe())
	printAll(env, relationships.Chorus(rex, tom))
	return nil
}

func demoSRP(ctx context.Context, env *Env) error {
	saver := principles.NewMemorySaver()
	report := principles.Report{Title: "Weekly", Lines: []string{"3 releases", "0 incidents"}}

	if err := principles.Publish(report, principles.MarkdownFormatter{}, saver); err != nil {
		return err
	}
	env.Printf("%s", strings.TrimRight(saver.Saved["Weekly"], "\n"))
	return nil
}

func demoOCP(ctx context.Context, env *Env) error {
	shapes := []principles.Shape{
		principles.Rectangle{Width: 2, Height: 3},
		principles.Circle{Radius: 1},
		principles.Triangle{Base: 4, Height: 5},
	}
	for _, s := range shapes {
		env.Printf("%T area: %.2f", s, s.Area())
	}
	env.Printf("Total area: %.2f", principles.TotalArea(shapes...))
	return nil
}

func demoLSP(ctx context.Context, env *Env) error {
	printAll(env, principles.FeedAll(principles.Sparrow{}, principles.Penguin{}))
	printAll(env, principles.LaunchAll(principles.Sparrow{}))
	env.Printf("%s", principles.Penguin{}.Swim())
	return nil
}

func demoISP(ctx context.Context, env *Env) error {
	alice := principles.Human{Name: "Alice"}
	robot := principles.Robot{Model: "R2"}

	printAll(env, principles.Shift(alice, robot))
	printAll(env, principles.LunchBreak(alice))
	return nil
}

func demoDIP(ctx context.Context, env *Env) error {
	for _, n := range []principles.Notifier{principles.EmailNotifier{}, principles.SMSNotifier{}} {
		msg, err := principles.NewAlertService(n).Alert("on-call", "disk almost full")
		if err != nil {
			return err
		}
		env.Printf("%s", msg)
	}
	return nil
}

func demoStrategy(ctx context.Context, env *Env) error {
	duck := strategy.NewMallard()

	fly, err := duck.PerformFly()
	if err != nil {
		return err
	}
	quack, err := duck.PerformQuack()
	if err != nil {
		return err
	}
	env.Printf("%s: %s %s", duck.Name, fly, quack)

	q, ok := strategy.QuackByName(env.Config.Strategy.DefaultQuack)
	if !ok {
		return fmt.Errorf("unknown quack behavior %q", env.Config.Strategy.DefaultQuack)
	}
	duck.SetQuackBehavior(q)
	quack, err = duck.PerformQuack()
	if err != nil {
		return err
	}
	env.Printf("%s after rebinding to %s: %s", duck.Name, env.Config.Strategy.DefaultQuack, quack)

	decoy := strategy.NewDuck("Decoy", nil, nil)
	if _, err := decoy.PerformQuack(); err != nil {
		env.Printf("%s", err)
	}
	return nil
}

func demoObserver(ctx context.Context, env *Env) error {
	station := observer.NewWeatherStation()
	station.Attach(observer.NewCurrentConditionsDisplay(env.Out))
	sub := station.Attach(observer.NewStatisticsDisplay(env.Out))

	station.SetMeasurements(observer.Measurements{Temperature: 80, Humidity: 65, Pressure: 30.4})
	station.SetMeasurements(observer.Measurements{Temperature: 82, Humidity: 70, Pressure: 29.2})

	station.Detach(sub)
	env.Printf("Statistics display detached")
	station.SetMeasurements(observer.Measurements{Temperature: 78, Humidity: 90, Pressure: 29.2})
	return nil
}

func demoDecorator(ctx context.Context, env *Env) error {
	cfg := env.Config.Decorator
	var beverage decorator.Beverage = decorator.Base{Name: "Base", Price: env.Config.BaseCost()}
	desc, cost, err := decorator.Receipt(beverage)
	if err != nil {
		return err
	}
	env.Printf("%s = %d", desc, cost)

	for i, s := range cfg.Surcharges {
		beverage = decorator.With(fmt.Sprintf("+%d", s), s)(beverage)
		if desc, cost, err = decorator.Receipt(beverage); err != nil {
			return err
		}
		env.Printf("after surcharge %d: %s = %d", i+1, desc, cost)
	}

	order := decorator.Wrap(decorator.DarkRoast(), decorator.Mocha, decorator.Mocha, decorator.Whip)
	if desc, cost, err = decorator.Receipt(order); err != nil {
		return err
	}
	env.Printf("%s %s", desc, decorator.FormatCost(cost))
	return nil
}

func demoFactoryMethod(ctx context.Context, env *Env) error {
	for _, kind := range factory.Kinds() {
		l, err := factory.NewLogistics(kind)
		if err != nil {
			return err
		}
		plan, err := l.PlanDelivery("20 crates")
		if err != nil {
			return err
		}
		env.Printf("%s: %s", kind, plan)
	}
	return nil
}

var formThemes = []string{"light", "dark"}

func demoAbstractFactory(ctx context.Context, env *Env) error {
	for _, name := range formThemes {
		if err := renderForm(env, name); err != nil {
			return err
		}
	}
	return nil
}

func renderForm(env *Env, theme string) error {
	f, ok := factory.ThemeByName(theme)
	if !ok {
		return fmt.Errorf("unknown widget theme %q", theme)
	}
	lines, err := factory.NewForm(f).Render(true)
	if err != nil {
		return err
	}
	env.Printf("%s theme:", f.Theme())
	for _, line := range lines {
		env.Printf("  %s", line)
	}
	return nil
}

func demoSingleton(ctx context.Context, env *Env) error {
	audit := singleton.NewLazy(singleton.NewAuditLog)

	orders := singleton.NewOrderService(audit.Get())
	payments := singleton.NewPaymentService(audit.Get())
	orders.PlaceOrder("A-1")
	payments.Charge("A-1", 1999)

	printAll(env, audit.Get().Entries())
	return nil
}

func demoCommand(ctx context.Context, env *Env) error {
	remote := command.NewRemoteControl(env.Config.RemoteSlots())
	kitchen := &command.Light{Location: "Kitchen"}
	stereo := &command.Stereo{}

	bindings := []command.Command{
		command.LightOnCommand{Light: kitchen},
		command.LightOffCommand{Light: kitchen},
		command.MacroCommand{
			command.LightOnCommand{Light: kitchen},
			command.StereoOnWithCDCommand{Stereo: stereo, Volume: 11},
		},
	}
	for i, c := range bindings {
		if err := remote.SetCommand(i, c); err != nil {
			env.Logger.Warn("Command", "Remote has %d slots, skipping binding %d", remote.Slots(), i)
		}
	}

	for slot := 0; slot < remote.Slots(); slot++ {
		out, err := remote.Press(slot)
		if err != nil {
			return err
		}
		env.Printf("slot %d: %s", slot, out)
	}
	return nil
}

func demoAdapter(ctx context.Context, env *Env) error {
	env.Printf("The turkey says...")
	printAll(env, adapter.Exercise(adapter.TurkeyAdapter{Turkey: adapter.WildTurkey{}}))
	env.Printf("The duck says...")
	printAll(env, adapter.Exercise(adapter.MallardDuck{}))
	return nil
}

func demoFacade(ctx context.Context, env *Env) error {
	theater := facade.NewHomeTheater()
	printAll(env, theater.WatchMovie("Raiders of the Lost Ark"))
	printAll(env, theater.EndMovie())
	return nil
}

func demoTemplateMethod(ctx context.Context, env *Env) error {
	for _, r := range []templatemethod.Recipe{templatemethod.Tea{}, templatemethod.Coffee{Black: true}} {
		printAll(env, templatemethod.Prepare(r))
	}
	return nil
}

func demoIterator(ctx context.Context, env *Env) error {
	w := iterator.NewWaitress(iterator.NewPancakeHouseMenu(), iterator.NewDinerMenu())
	w.PrintMenu(env.Out)
	env.Printf("Vegetarian: %s", strings.Join(w.VegetarianItems(), ", "))
	return nil
}

func demoMemento(ctx context.Context, env *Env) error {
	policy, err := memento.ParseUndoPolicy(env.Config.Memento.UndoPolicy)
	if err != nil {
		return err
	}

	editor := memento.NewEditor()
	caretaker := memento.NewCaretaker(editor, policy)

	editor.Type("Design patterns")
	caretaker.Backup("title")
	editor.Type(" are reusable solutions")
	caretaker.Backup("sentence")
	editor.Type(" -- typo!")
	env.Printf("Current: %q (policy %s)", editor.Content(), policy)

	for {
		s, err := caretaker.Undo()
		if err != nil {
			env.Printf("Undo: %s", err)
			break
		}
		env.Printf("Undo to %q: %q", s.Label(), editor.Content())
	}

	editor.Type("!")
	caretaker.Backup("final")
	data, err := caretaker.Export()
	if err != nil {
		return err
	}
	env.Printf("%s", strings.TrimRight(string(data), "\n"))
	return nil
}
