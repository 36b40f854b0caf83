package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedAdapter(t *testing.T) {
	var target Target = CombinedAdapter{}
	assert.Equal(t, "target class\nservice class", target.Show())
}

func TestObjectAdapter(t *testing.T) {
	var target Target = NewObjectAdapter()
	assert.Equal(t, "target class\nservice class", target.Show())
}
