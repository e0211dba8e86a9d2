package settings

import (
	"testing"

	"github.com/jask/tabdeck/internal/resource"
)

type recordingOpener struct{ urls []string }

func (r *recordingOpener) OpenURL(u string) { r.urls = append(r.urls, u) }

type kindVisitor struct{ kinds []string }

func (k *kindVisitor) VisitBoolean(*BooleanItem) { k.kinds = append(k.kinds, "boolean") }
func (k *kindVisitor) VisitChoice(ChoiceField)   { k.kinds = append(k.kinds, "choice") }
func (k *kindVisitor) VisitAction(*ActionItem)   { k.kinds = append(k.kinds, "action") }
func (k *kindVisitor) VisitVersion(*VersionItem) { k.kinds = append(k.kinds, "version") }
func (k *kindVisitor) VisitValue(ValueField)     { k.kinds = append(k.kinds, "value") }
func (k *kindVisitor) VisitLink(Link)            { k.kinds = append(k.kinds, "link") }

func TestActivateDispatchesPerVariant(t *testing.T) {
	on := false
	cur := modeA
	actions := 0
	name := "x"
	opener := &recordingOpener{}

	items := []Item{
		NewBoolean("b", resource.IconNone, Ref(&on)),
		NewChoice("c", resource.IconNone, Ref(&cur), []mode{modeA, modeB, modeC}, modeLabels),
		NewAction("a", resource.IconNone, func() { actions++ }),
		NewVersion("v", resource.IconNone, "1.0", func() { actions++ }),
		NewValue("s", resource.IconNone, Ref(&name), StringCodec()),
		ChangeLogs,
	}

	var handled []bool
	for _, it := range items {
		handled = append(handled, Activate(it, opener))
	}

	if !on || cur != modeB || actions != 2 {
		t.Fatalf("unexpected state on=%v cur=%v actions=%d", on, cur, actions)
	}
	if len(opener.urls) != 1 || opener.urls[0] != ChangeLogs.URL() {
		t.Fatalf("expected change log url opened, got %v", opener.urls)
	}
	want := []bool{true, true, true, true, false, true}
	for i := range want {
		if handled[i] != want[i] {
			t.Fatalf("item %d handled=%v want %v", i, handled[i], want[i])
		}
	}
	if name != "x" {
		t.Fatalf("value entries are edited by the consumer")
	}

	kv := &kindVisitor{}
	for _, it := range items {
		it.Accept(kv)
	}
	wantKinds := []string{"boolean", "choice", "action", "version", "value", "link"}
	for i := range wantKinds {
		if kv.kinds[i] != wantKinds[i] {
			t.Fatalf("visit order %v", kv.kinds)
		}
	}
}

func TestRowsPacking(t *testing.T) {
	on := false
	one := func() Item { return NewBoolean("b", resource.IconNone, Ref(&on)) }
	wide := NewVersion("v", resource.IconNone, "1", nil)

	rows := Rows([]Item{one(), one(), one(), wide, one()})
	sizes := make([]int, len(rows))
	for i, r := range rows {
		sizes[i] = len(r)
	}
	want := []int{2, 1, 1, 1}
	if len(sizes) != len(want) {
		t.Fatalf("rows %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("rows %v, want %v", sizes, want)
		}
	}
	if rows[2][0] != Item(wide) {
		t.Fatalf("wide item should occupy its own row")
	}
}
