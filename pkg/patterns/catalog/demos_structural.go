package catalog

import (
	"fmt"
	"io"

	"github.com/zheny5/gopatterns/pkg/patterns/structural"
)

func registerStructural(c *Catalog) {
	c.Register(Demo{Name: "adapter", Family: FamilyStructural, Run: demoAdapter}).
		Register(Demo{Name: "bridge", Family: FamilyStructural, Run: demoBridge}).
		Register(Demo{Name: "composite", Family: FamilyStructural, Run: demoComposite}).
		Register(Demo{Name: "decorator", Family: FamilyStructural, Run: demoDecorator}).
		Register(Demo{Name: "facade", Family: FamilyStructural, Run: demoFacade}).
		Register(Demo{Name: "flyweight", Family: FamilyStructural, Run: demoFlyweight}).
		Register(Demo{Name: "proxy", Family: FamilyStructural, Run: demoProxy})
}

func demoAdapter(w io.Writer) error {
	if _, err := fmt.Fprintln(w, structural.CombinedAdapter{}.Show()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, structural.NewObjectAdapter().Show())
	return err
}

func demoBridge(w io.Writer) error {
	if _, err := fmt.Fprintln(w, structural.NewAbstractionOne(structural.ImplOne{}).Show()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, structural.NewAbstractionTwo(structural.ImplTwo{}).Show())
	return err
}

func demoComposite(w io.Writer) error {
	tree := structural.NewComposite()
	tree.Add(structural.NewLeaf("leaf"))
	tree.Add(structural.NewLeaf("leaf"))
	tree.Add(structural.NewLeaf("leaf2"))

	subtree := structural.NewComposite()
	subtree.Add(structural.NewLeaf("leaf"))
	subtree.Add(structural.NewLeaf("leaf2"))
	tree.Add(subtree)

	_, err := fmt.Fprintln(w, tree.Show())
	return err
}

func demoDecorator(w io.Writer) error {
	var coffee structural.Coffee = structural.OriginalCoffee{}
	if _, err := fmt.Fprintln(w, coffee.Show()); err != nil {
		return err
	}
	coffee = structural.WithHoney(coffee)
	if _, err := fmt.Fprintln(w, coffee.Show()); err != nil {
		return err
	}
	coffee = structural.WithMilk(coffee)
	_, err := fmt.Fprintln(w, coffee.Show())
	return err
}

func demoFacade(w io.Writer) error {
	_, err := fmt.Fprintln(w, structural.NewVideoFacade().Show())
	return err
}

func demoFlyweight(w io.Writer) error {
	factory := structural.NewCatFactory()
	for i, texture := range []string{"black", "black", "white"} {
		cat := structural.NewMovingCat(factory.Cat(texture), i)
		if _, err := fmt.Fprintln(w, cat.Show()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "distinct cats: %d\n", factory.Len())
	return err
}

func demoProxy(w io.Writer) error {
	var payment structural.Payment = structural.NewCreditCard(&structural.Cash{})
	_, err := fmt.Fprintln(w, payment.Show())
	return err
}
