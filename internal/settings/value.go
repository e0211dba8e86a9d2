package settings

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jask/tabdeck/internal/resource"
)

// ErrInvalidValue is returned when text cannot be parsed into a value.
var ErrInvalidValue = errors.New("invalid setting value")

// Codec converts a value to and from its editable text.
type Codec[T any] struct {
	Format func(T) string
	Parse  func(string) (T, error)
}

// ValueField is the type-erased view of a ValueItem.
type ValueField interface {
	Item
	Text() string
	SetText(s string) error
}

// ValueItem is a free-form value edited by the consumer.
type ValueItem[T any] struct {
	desc  Descriptor
	value Binding[T]
	codec Codec[T]
}

func NewValue[T any](title resource.StringID, icon resource.IconID, value Binding[T], codec Codec[T], opts ...Option) *ValueItem[T] {
	return &ValueItem[T]{desc: describe(title, icon, opts), value: value, codec: codec}
}

func (v *ValueItem[T]) Describe() Descriptor { return v.desc }
func (v *ValueItem[T]) Accept(vis Visitor)   { vis.VisitValue(v) }
func (*ValueItem[T]) sealed()                {}

func (v *ValueItem[T]) Value() T { return v.value.Get() }

func (v *ValueItem[T]) Text() string { return v.codec.Format(v.value.Get()) }

// SetText parses s and stores it. The bound value is untouched on error.
func (v *ValueItem[T]) SetText(s string) error {
	parsed, err := v.codec.Parse(s)
	if err != nil {
		return err
	}
	v.value.Set(parsed)
	return nil
}

// StringCodec trims surrounding space and rejects empty text.
func StringCodec() Codec[string] {
	return Codec[string]{
		Format: func(s string) string { return s },
		Parse: func(s string) (string, error) {
			s = strings.TrimSpace(s)
			if s == "" {
				return "", fmt.Errorf("empty text: %w", ErrInvalidValue)
			}
			return s, nil
		},
	}
}

// IntCodec accepts integers in [lo, hi].
func IntCodec(lo, hi int) Codec[int] {
	return Codec[int]{
		Format: strconv.Itoa,
		Parse: func(s string) (int, error) {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return 0, fmt.Errorf("%q is not a number: %w", s, ErrInvalidValue)
			}
			if n < lo || n > hi {
				return 0, fmt.Errorf("%d outside %d..%d: %w", n, lo, hi, ErrInvalidValue)
			}
			return n, nil
		},
	}
}

// URLCodec accepts absolute http(s) URLs.
func URLCodec() Codec[string] {
	return Codec[string]{
		Format: func(s string) string { return s },
		Parse: func(s string) (string, error) {
			s = strings.TrimSpace(s)
			u, err := url.Parse(s)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return "", fmt.Errorf("%q is not a web address: %w", s, ErrInvalidValue)
			}
			return s, nil
		},
	}
}
