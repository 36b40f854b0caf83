package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDemoOutput runs one registered demo and captures its output.
func runDemoOutput(t *testing.T, c *Catalog, name string) string {
	t.Helper()
	d, ok := c.Get(name)
	require.True(t, ok, "demo %q not registered", name)

	var buf bytes.Buffer
	require.NoError(t, d.Run(&buf))
	return buf.String()
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 23, c.Len())
	assert.Len(t, c.ByFamily(FamilyCreational), 6)
	assert.Len(t, c.ByFamily(FamilyStructural), 7)
	assert.Len(t, c.ByFamily(FamilyBehavioral), 10)
}

func TestCreationalDemos(t *testing.T) {
	c := Default()

	tests := []struct {
		demo string
		want string
	}{
		{"simple-factory", "productA\n"},
		{"factory-method", "productA\n"},
		{"abstract-factory", "productB\naccessoryB\n"},
		{"builder", "without builder\nAgreat, Agreat, Agreat\n"},
		{"prototype", "hello, world\nhello, world\n"},
		{"singleton", "I am singleton !\nI am singleton !\n"},
	}
	for _, tt := range tests {
		t.Run(tt.demo, func(t *testing.T) {
			assert.Equal(t, tt.want, runDemoOutput(t, c, tt.demo))
		})
	}
}

func TestStructuralDemos(t *testing.T) {
	c := Default()

	tests := []struct {
		demo string
		want string
	}{
		{"adapter", "target class\nservice class\ntarget class\nservice class\n"},
		{"bridge", "abstraction 1\nimplementation 1\nabstraction 2\nimplementation 2\n"},
		{"decorator", "original coffee\noriginal coffee add honey-\noriginal coffee add honey- add milk-\n"},
		{"facade", "show video\nshow audio\nmix video and audio\n"},
		{"proxy", "here is the cash\n"},
	}
	for _, tt := range tests {
		t.Run(tt.demo, func(t *testing.T) {
			assert.Equal(t, tt.want, runDemoOutput(t, c, tt.demo))
		})
	}

	t.Run("composite", func(t *testing.T) {
		out := runDemoOutput(t, c, "composite")
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

		// root reports four children, the nested composite two
		assert.Equal(t, "size: 4", lines[0])
		assert.Contains(t, out, "size: 2")
		assert.Contains(t, out, "leaf leaf-")
		assert.Contains(t, out, "leaf2 leaf-")
	})

	t.Run("flyweight", func(t *testing.T) {
		out := runDemoOutput(t, c, "flyweight")
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 4)

		// two black cats share one instance
		assert.True(t, strings.HasPrefix(lines[0], "black cat-"))
		assert.True(t, strings.HasPrefix(lines[1], "black cat-"))
		assert.True(t, strings.HasPrefix(lines[2], "white cat-"))
		assert.Equal(t,
			strings.TrimSuffix(lines[0], " position: 0"),
			strings.TrimSuffix(lines[1], " position: 1"),
		)
		assert.Equal(t, "distinct cats: 2", lines[3])
	})
}

func TestBehavioralDemos(t *testing.T) {
	c := Default()

	tests := []struct {
		demo string
		want string
	}{
		{"chain", "handler1\nhandler2\n"},
		{"command", "action 1\naction 2\n"},
		{"iterator", "1\n2\n3\n4\n5\n6\n7\n"},
		{"mediator", "button receives: textbox\ntextbox receives: button\nlabel receives: label\n"},
		{"memento", "play : 0\nplay : 1\nplay : 2\nplay : 0\n"},
		{"observer", "subscriber1 :0\nsubscriber1 :1\n"},
		{"state", "lock...\nplaying...\nnext...\nplaying...\n"},
		{"strategy", "bike: a-b\nwalking: b-c\n"},
		{"template-method", "first step1\nfirst step2\nstep3\nsecond step1\nsecond step2\nsecond step3\n"},
		{"visitor", "xml export: circle\njson export: circle\nxml export: square\njson export: square\n"},
	}
	for _, tt := range tests {
		t.Run(tt.demo, func(t *testing.T) {
			assert.Equal(t, tt.want, runDemoOutput(t, c, tt.demo))
		})
	}
}

func TestMementoDemoReusesStore(t *testing.T) {
	// a shared store accumulates history across catalog builds
	c := Default()

	first := runDemoOutput(t, c, "memento")
	second := runDemoOutput(t, c, "memento")
	assert.Equal(t, first, second, "each run starts from a fresh game")
}
