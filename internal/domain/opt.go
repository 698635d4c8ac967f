package domain

// Opt marks a value that may be absent, as opposed to present-but-zero.
type Opt[T any] struct {
	Value   T
	Present bool
}

func Some[T any](v T) Opt[T] { return Opt[T]{Value: v, Present: true} }
