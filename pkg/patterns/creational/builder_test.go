package creational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorRecipes(t *testing.T) {
	t.Run("ordered recipe with builder A", func(t *testing.T) {
		d := NewDirector()
		d.SetBuilder(&BuilderA{})
		require.NoError(t, d.ConstructOrdered())

		a, err := d.Assembly()
		require.NoError(t, err)
		assert.Equal(t, "A0, A1, A2", a.Show())
	})

	t.Run("uniform recipe with builder B", func(t *testing.T) {
		d := NewDirector()
		d.SetBuilder(&BuilderB{})
		require.NoError(t, d.ConstructUniform())

		a, err := d.Assembly()
		require.NoError(t, err)
		assert.Equal(t, "Bgreat, Bgreat, Bgreat", a.Show())
	})

	t.Run("recipe is independent of the builder", func(t *testing.T) {
		// Same recipe, different builders: same part sequence, different finish.
		for _, b := range []Builder{&BuilderA{}, &BuilderB{}} {
			d := NewDirector()
			d.SetBuilder(b)
			require.NoError(t, d.ConstructOrdered())

			a, err := d.Assembly()
			require.NoError(t, err)
			assert.Equal(t, a.PartA[1:], "0")
			assert.Equal(t, a.PartB[1:], "1")
			assert.Equal(t, a.PartC[1:], "2")
		}
	})
}

func TestDirectorWithoutBuilder(t *testing.T) {
	d := NewDirector()

	assert.ErrorIs(t, d.ConstructOrdered(), ErrNoBuilder)
	assert.ErrorIs(t, d.ConstructUniform(), ErrNoBuilder)

	a, err := d.Assembly()
	assert.ErrorIs(t, err, ErrNoBuilder)
	assert.Equal(t, Assembly{}, a)
}

func TestAssemblyIsIndependentOfBuilder(t *testing.T) {
	b := &BuilderA{}
	b.BuildPartA("x")
	first := b.Assembly()

	b.BuildPartA("y")
	second := b.Assembly()

	assert.Equal(t, "Ax", first.PartA)
	assert.Equal(t, "Ay", second.PartA)
}
