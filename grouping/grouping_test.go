package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	course, subject, name string
}

func TestByKeepsFirstAppearanceOrder(t *testing.T) {
	items := []entry{
		{"B", "b1", "qB1"},
		{"A", "a1", "qA1"},
		{"A", "a2", "qA2"},
		{"A", "a1", "qA1-second"},
	}

	groups := By(items, func(e entry) string { return e.course })
	if assert.Len(t, groups, 2) {
		assert.Equal(t, "B", groups[0].Key)
		assert.Equal(t, "A", groups[1].Key)
	}

	inner := By(groups[1].Items, func(e entry) string { return e.subject })
	if assert.Len(t, inner, 2) {
		assert.Equal(t, "a1", inner[0].Key)
		assert.Equal(t, []entry{items[1], items[3]}, inner[0].Items)
		assert.Equal(t, "a2", inner[1].Key)
	}
}

func TestByEmptyInput(t *testing.T) {
	groups := By([]entry(nil), func(e entry) string { return e.course })
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestCount(t *testing.T) {
	tallies := Count([]string{"x", "y", "x", "z", "x"}, func(s string) string { return s })
	assert.Equal(t, []Tally[string]{{"x", 3}, {"y", 1}, {"z", 1}}, tallies)
}
