package settings

import (
	"fmt"

	"github.com/jask/tabdeck/internal/resource"
)

// ChoiceField is the type-erased view of a ChoiceItem.
type ChoiceField interface {
	Item
	Labels() []resource.StringID
	// Selected is the index of the current value, or -1 if it is not one of the options.
	Selected() int
	Select(i int)
	Next()
}

// ChoiceItem picks one of a fixed, ordered set of values.
type ChoiceItem[T comparable] struct {
	desc   Descriptor
	value  Binding[T]
	values []T
	labels []resource.StringID
}

// NewChoice pairs values[i] with labels[i]. It panics unless every value has
// exactly one label and no value repeats.
func NewChoice[T comparable](title resource.StringID, icon resource.IconID, value Binding[T], values []T, labels []resource.StringID, opts ...Option) *ChoiceItem[T] {
	if len(values) == 0 {
		panic("settings: choice needs at least one value")
	}
	if len(values) != len(labels) {
		panic(fmt.Sprintf("settings: choice %q has %d values but %d labels", title, len(values), len(labels)))
	}
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			panic(fmt.Sprintf("settings: choice %q repeats value %v", title, v))
		}
		seen[v] = struct{}{}
	}
	return &ChoiceItem[T]{
		desc:   describe(title, icon, opts),
		value:  value,
		values: append([]T(nil), values...),
		labels: append([]resource.StringID(nil), labels...),
	}
}

func (c *ChoiceItem[T]) Describe() Descriptor { return c.desc }
func (c *ChoiceItem[T]) Accept(v Visitor)     { v.VisitChoice(c) }
func (*ChoiceItem[T]) sealed()                {}

func (c *ChoiceItem[T]) Labels() []resource.StringID {
	return append([]resource.StringID(nil), c.labels...)
}

func (c *ChoiceItem[T]) Values() []T { return append([]T(nil), c.values...) }

func (c *ChoiceItem[T]) Value() T { return c.value.Get() }

func (c *ChoiceItem[T]) Selected() int {
	cur := c.value.Get()
	for i, v := range c.values {
		if v == cur {
			return i
		}
	}
	return -1
}

// Select stores the i-th value. Out of range indexes are ignored.
func (c *ChoiceItem[T]) Select(i int) {
	if i < 0 || i >= len(c.values) {
		return
	}
	c.value.Set(c.values[i])
}

// Next advances to the following value, wrapping around.
func (c *ChoiceItem[T]) Next() {
	c.Select((c.Selected() + 1) % len(c.values))
}
