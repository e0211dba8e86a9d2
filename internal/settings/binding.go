package settings

// Binding reads and writes a value owned by someone else.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// Ref binds directly to *p.
func Ref[T any](p *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *p },
		Set: func(v T) { *p = v },
	}
}

// Observe returns b with fn called after every Set.
func Observe[T any](b Binding[T], fn func(T)) Binding[T] {
	set := b.Set
	return Binding[T]{
		Get: b.Get,
		Set: func(v T) {
			set(v)
			fn(v)
		},
	}
}
