package settings

import (
	"errors"
	"testing"

	"github.com/jask/tabdeck/internal/resource"
)

type mode int

const (
	modeA mode = iota
	modeB
	modeC
)

var modeLabels = []resource.StringID{"mode_a", "mode_b", "mode_c"}

func TestChoiceSelectSetsMatchingValue(t *testing.T) {
	var cur mode
	item := NewChoice("mode", resource.IconNone, Ref(&cur), []mode{modeA, modeB, modeC}, modeLabels)

	for i, want := range []mode{modeA, modeB, modeC} {
		item.Select(i)
		if cur != want {
			t.Fatalf("select %d: expected %v, got %v", i, want, cur)
		}
		if item.Selected() != i {
			t.Fatalf("select %d: Selected() = %d", i, item.Selected())
		}
	}
	if len(item.Labels()) != len(item.Values()) {
		t.Fatalf("every value needs exactly one label")
	}

	item.Select(7)
	if cur != modeC {
		t.Fatalf("out of range select must be ignored, got %v", cur)
	}
}

func TestChoiceNextWraps(t *testing.T) {
	cur := modeB
	item := NewChoice("mode", resource.IconNone, Ref(&cur), []mode{modeA, modeB, modeC}, modeLabels)
	item.Next()
	item.Next()
	if cur != modeA {
		t.Fatalf("expected wrap to modeA, got %v", cur)
	}

	cur = mode(99)
	if item.Selected() != -1 {
		t.Fatalf("unknown value should not be selected")
	}
	item.Next()
	if cur != modeA {
		t.Fatalf("next from unknown value starts at the first option, got %v", cur)
	}
}

func TestChoicePanicsOnArityMismatch(t *testing.T) {
	cases := map[string]func(){
		"fewer labels": func() {
			var cur mode
			NewChoice("mode", resource.IconNone, Ref(&cur), []mode{modeA, modeB, modeC}, modeLabels[:2])
		},
		"duplicate value": func() {
			var cur mode
			NewChoice("mode", resource.IconNone, Ref(&cur), []mode{modeA, modeA, modeC}, modeLabels)
		},
		"empty": func() {
			var cur mode
			NewChoice[mode]("mode", resource.IconNone, Ref(&cur), nil, nil)
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestBooleanToggleAndObserve(t *testing.T) {
	on := false
	var seen []bool
	item := NewBoolean("flag", resource.IconNone, Observe(Ref(&on), func(v bool) { seen = append(seen, v) }))
	if item.Toggle() != true || !on {
		t.Fatalf("expected toggle on")
	}
	item.Toggle()
	if on || item.Value() {
		t.Fatalf("expected toggle off")
	}
	if len(seen) != 2 || seen[0] != true || seen[1] != false {
		t.Fatalf("observer saw %v", seen)
	}
}

func TestDescriptorDefaults(t *testing.T) {
	on := false
	b := NewBoolean("flag", resource.IconReverse, Ref(&on), WithSummary("flag_summary"))
	d := b.Describe()
	if d.Span != 1 || d.Summary != "flag_summary" || d.Icon != resource.IconReverse {
		t.Fatalf("unexpected descriptor %+v", d)
	}

	v := NewVersion("version", resource.IconInfo, "1.2.3", nil, WithSpan(1))
	if v.Describe().Span != 2 {
		t.Fatalf("version entries always span two cells")
	}

	if got := NewAction("a", resource.IconNone, nil).Describe().Summary; got != resource.None {
		t.Fatalf("expected no summary, got %q", got)
	}
}

func TestWithSpanRejectsInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for span 3")
		}
	}()
	WithSpan(3)
}

func TestValueSetText(t *testing.T) {
	limit := 100
	item := NewValue("limit", resource.IconNumber, Ref(&limit), IntCodec(1, 1000))
	if item.Text() != "100" {
		t.Fatalf("unexpected text %q", item.Text())
	}
	if err := item.SetText(" 250 "); err != nil || limit != 250 {
		t.Fatalf("SetText: %v, limit %d", err, limit)
	}
	for _, bad := range []string{"abc", "0", "5000"} {
		if err := item.SetText(bad); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("SetText(%q) = %v, want ErrInvalidValue", bad, err)
		}
	}
	if limit != 250 {
		t.Fatalf("failed parses must not change the value, got %d", limit)
	}

	home := "https://a.test"
	u := NewValue("home", resource.IconHome, Ref(&home), URLCodec())
	if err := u.SetText("ftp://x"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := u.SetText("https://b.test/"); err != nil || home != "https://b.test/" {
		t.Fatalf("SetText url: %v %q", err, home)
	}
	if err := NewValue("s", resource.IconNone, Ref(&home), StringCodec()).SetText("  "); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("blank strings are invalid, got %v", err)
	}
}

func TestLinksHaveURLs(t *testing.T) {
	icons := map[resource.IconID]Link{}
	for _, l := range Links {
		d := l.Describe()
		if l.URL() == "" || d.Title == resource.None {
			t.Fatalf("link %d incomplete", l)
		}
		if resource.Glyph(d.Icon) == " " {
			t.Fatalf("link %d has no glyph", l)
		}
		if prev, ok := icons[d.Icon]; ok {
			t.Fatalf("links %d and %d share an icon", prev, l)
		}
		icons[d.Icon] = l
	}
	if ProjectSite.Describe().Icon != resource.IconCode {
		t.Fatalf("project site shows the source code icon")
	}
}
