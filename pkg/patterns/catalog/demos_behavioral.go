package catalog

import (
	"fmt"
	"io"

	"github.com/zheny5/gopatterns/pkg/patterns/behavioral"
	"github.com/zheny5/gopatterns/pkg/patterns/history"
)

func registerBehavioral(c *Catalog, opts BuildOptions) {
	c.Register(Demo{Name: "chain", Family: FamilyBehavioral, Run: demoChain}).
		Register(Demo{Name: "command", Family: FamilyBehavioral, Run: demoCommand}).
		Register(Demo{Name: "iterator", Family: FamilyBehavioral, Run: demoIterator}).
		Register(Demo{Name: "mediator", Family: FamilyBehavioral, Run: demoMediator}).
		Register(Demo{Name: "memento", Family: FamilyBehavioral, Run: demoMemento(opts.History)}).
		Register(Demo{Name: "observer", Family: FamilyBehavioral, Run: demoObserver}).
		Register(Demo{Name: "state", Family: FamilyBehavioral, Run: demoState}).
		Register(Demo{Name: "strategy", Family: FamilyBehavioral, Run: demoStrategy}).
		Register(Demo{Name: "template-method", Family: FamilyBehavioral, Run: demoTemplate}).
		Register(Demo{Name: "visitor", Family: FamilyBehavioral, Run: demoVisitor})
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func demoChain(w io.Writer) error {
	entry := &behavioral.BaseHandler{}
	first := &behavioral.FirstHandler{}
	second := &behavioral.SecondHandler{}
	entry.SetNext(first)
	first.SetNext(second)

	return writeLines(w, entry.Handle(0))
}

func demoCommand(w io.Writer) error {
	var invoker behavioral.Invoker
	invoker.Add(behavioral.NewFirstCommand(&behavioral.FirstReceiver{}))
	invoker.Add(behavioral.NewSecondCommand(&behavioral.SecondReceiver{}))

	return writeLines(w, invoker.ExecuteAll())
}

func demoIterator(w io.Writer) error {
	collection := behavioral.NewCollection(1, 2, 3, 4, 5, 6, 7)
	it := collection.Iterator()
	for it.HasMore() {
		if _, err := fmt.Fprintln(w, it.Next()); err != nil {
			return err
		}
	}
	return nil
}

func demoMediator(w io.Writer) error {
	dialog := &behavioral.Dialog{}
	button := behavioral.NewButton(dialog)
	textbox := behavioral.NewTextbox(dialog)
	label := behavioral.NewLabel(dialog)
	dialog.Attach(button, textbox, label)

	button.Send("button")
	textbox.Send("textbox")
	label.Send("label")

	for _, component := range []interface{ Received() []string }{button, textbox, label} {
		if err := writeLines(w, component.Received()); err != nil {
			return err
		}
	}
	return nil
}

// demoMemento closes over the history store so the caretaker can be
// backed by persistent storage when the catalog is built with one.
func demoMemento(store history.Store) DemoFunc {
	return func(w io.Writer) error {
		caretaker := behavioral.NewCaretaker(store)
		game := behavioral.NewGame()

		if err := caretaker.Backup(game.Save()); err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			if _, err := fmt.Fprintln(w, game.Play()); err != nil {
				return err
			}
		}

		m, err := caretaker.Undo()
		if err != nil {
			return err
		}
		game.Restore(m)
		_, err = fmt.Fprintln(w, game.Play())
		return err
	}
}

func demoObserver(w io.Writer) error {
	var publisher behavioral.Publisher
	subscriber := behavioral.NewLogSubscriber("subscriber1")
	publisher.Subscribe(subscriber)
	publisher.Notify(0)
	publisher.Notify(1)

	return writeLines(w, subscriber.Updates())
}

func demoState(w io.Writer) error {
	player := behavioral.NewPlayer()
	for _, act := range []string{
		player.Lock(),
		player.Play(),
		player.Next(),
		player.Play(),
	} {
		if _, err := fmt.Fprintln(w, act); err != nil {
			return err
		}
	}
	return nil
}

func demoStrategy(w io.Writer) error {
	var navigator behavioral.Navigator

	navigator.SetStrategy(behavioral.BikeStrategy{})
	route, err := navigator.Route("a", "b")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, route); err != nil {
		return err
	}

	navigator.SetStrategy(behavioral.WalkingStrategy{})
	route, err = navigator.Route("b", "c")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, route)
	return err
}

func demoTemplate(w io.Writer) error {
	if err := writeLines(w, behavioral.Execute(behavioral.FirstTask{})); err != nil {
		return err
	}
	return writeLines(w, behavioral.Execute(behavioral.SecondTask{}))
}

func demoVisitor(w io.Writer) error {
	circle := &behavioral.Circle{}
	square := &behavioral.Square{}
	for _, line := range []string{
		circle.Accept(behavioral.XMLExporter{}),
		circle.Accept(behavioral.JSONExporter{}),
		square.Accept(behavioral.XMLExporter{}),
		square.Accept(behavioral.JSONExporter{}),
	} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
