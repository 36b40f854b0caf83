package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/zheny5/gopatterns/pkg/patterns/creational"
)

func registerCreational(c *Catalog) {
	c.Register(Demo{Name: "simple-factory", Family: FamilyCreational, Run: demoSimpleFactory}).
		Register(Demo{Name: "factory-method", Family: FamilyCreational, Run: demoFactoryMethod}).
		Register(Demo{Name: "abstract-factory", Family: FamilyCreational, Run: demoAbstractFactory}).
		Register(Demo{Name: "builder", Family: FamilyCreational, Run: demoBuilder}).
		Register(Demo{Name: "prototype", Family: FamilyCreational, Run: demoPrototype}).
		Register(Demo{Name: "singleton", Family: FamilyCreational, Run: demoSingleton})
}

func demoSimpleFactory(w io.Writer) error {
	product, err := creational.NewProduct(creational.KindA)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, product.Show())
	return err
}

func demoFactoryMethod(w io.Writer) error {
	var factory creational.Factory = creational.FactoryA{}
	_, err := fmt.Fprintln(w, factory.CreateProduct().Show())
	return err
}

func demoAbstractFactory(w io.Writer) error {
	var factory creational.FamilyFactory = creational.FamilyB{}
	if _, err := fmt.Fprintln(w, factory.CreateProduct().Show()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, factory.CreateAccessory().Show())
	return err
}

func demoBuilder(w io.Writer) error {
	director := creational.NewDirector()

	// a director without a builder reports the gap and carries on
	if err := director.ConstructUniform(); errors.Is(err, creational.ErrNoBuilder) {
		if _, werr := fmt.Fprintln(w, "without builder"); werr != nil {
			return werr
		}
	}

	director.SetBuilder(&creational.BuilderA{})
	if err := director.ConstructUniform(); err != nil {
		return err
	}
	assembly, err := director.Assembly()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, assembly.Show())
	return err
}

func demoPrototype(w io.Writer) error {
	doc := &creational.Document{Data: "hello", Data2: "world"}
	if _, err := fmt.Fprintln(w, doc.Show()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, doc.Clone().Show())
	return err
}

func demoSingleton(w io.Writer) error {
	if _, err := fmt.Fprintln(w, creational.Instance().Show()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, creational.Instance().Show())
	return err
}
