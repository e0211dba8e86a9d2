// Package settings describes settings-screen entries as data. Each entry is
// one of a closed set of variants; consumers dispatch on them with a Visitor.
package settings

import (
	"fmt"

	"github.com/jask/tabdeck/internal/resource"
)

// Descriptor is the presentation data every entry carries.
type Descriptor struct {
	Title   resource.StringID
	Icon    resource.IconID
	Summary resource.StringID // None means no summary
	Span    int               // grid cells, 1 or 2
}

// Item is implemented only by the variants in this package.
type Item interface {
	Describe() Descriptor
	Accept(v Visitor)
	sealed()
}

// Visitor receives the concrete variant of an Item.
type Visitor interface {
	VisitBoolean(*BooleanItem)
	VisitChoice(ChoiceField)
	VisitAction(*ActionItem)
	VisitVersion(*VersionItem)
	VisitValue(ValueField)
	VisitLink(Link)
}

// Option adjusts a Descriptor at construction.
type Option func(*Descriptor)

func WithSummary(id resource.StringID) Option {
	return func(d *Descriptor) { d.Summary = id }
}

// WithSpan sets the number of grid cells. Only 1 and 2 are valid.
func WithSpan(span int) Option {
	if span != 1 && span != 2 {
		panic(fmt.Sprintf("settings: span must be 1 or 2, got %d", span))
	}
	return func(d *Descriptor) { d.Span = span }
}

func describe(title resource.StringID, icon resource.IconID, opts []Option) Descriptor {
	d := Descriptor{Title: title, Icon: icon, Span: 1}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// BooleanItem is a toggle bound to an external bool.
type BooleanItem struct {
	desc  Descriptor
	value Binding[bool]
}

func NewBoolean(title resource.StringID, icon resource.IconID, value Binding[bool], opts ...Option) *BooleanItem {
	return &BooleanItem{desc: describe(title, icon, opts), value: value}
}

func (b *BooleanItem) Describe() Descriptor { return b.desc }
func (b *BooleanItem) Accept(v Visitor)     { v.VisitBoolean(b) }
func (*BooleanItem) sealed()                {}

func (b *BooleanItem) Value() bool { return b.value.Get() }

// Toggle flips the bound value and returns the new one.
func (b *BooleanItem) Toggle() bool {
	next := !b.value.Get()
	b.value.Set(next)
	return next
}

// ActionItem runs a callback when activated.
type ActionItem struct {
	desc   Descriptor
	action func()
}

func NewAction(title resource.StringID, icon resource.IconID, action func(), opts ...Option) *ActionItem {
	return &ActionItem{desc: describe(title, icon, opts), action: action}
}

func (a *ActionItem) Describe() Descriptor { return a.desc }
func (a *ActionItem) Accept(v Visitor)     { v.VisitAction(a) }
func (*ActionItem) sealed()                {}

func (a *ActionItem) Invoke() {
	if a.action != nil {
		a.action()
	}
}

// VersionItem shows build information across the full row.
type VersionItem struct {
	desc    Descriptor
	version string
	action  func()
}

// NewVersion always spans two cells regardless of opts.
func NewVersion(title resource.StringID, icon resource.IconID, version string, action func(), opts ...Option) *VersionItem {
	d := describe(title, icon, opts)
	d.Span = 2
	return &VersionItem{desc: d, version: version, action: action}
}

func (v *VersionItem) Describe() Descriptor { return v.desc }
func (v *VersionItem) Accept(vis Visitor)   { vis.VisitVersion(v) }
func (*VersionItem) sealed()                {}

func (v *VersionItem) Version() string { return v.version }

func (v *VersionItem) Invoke() {
	if v.action != nil {
		v.action()
	}
}
