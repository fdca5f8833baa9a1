package zodiac

// Cloner is implemented by step data holding reference types, so a Step never hands out
// aliases of its internal state.
type Cloner[T any] interface {
	Clone() T
}

// Step owns one typed slice of wizard configuration.
//
// Data renders the current value and Set replaces it. Set always takes the complete next
// value: callers copy the current data, change the fields they edit and pass the result.
type Step[T any] struct {
	defaults T
	data     T
}

// NewStep creates a step initialized with its defaults, so it is submittable without any
// user edits.
func NewStep[T any](defaults T) *Step[T] {
	return &Step[T]{
		defaults: cloneValue(defaults),
		data:     cloneValue(defaults),
	}
}

// Data returns a copy of the current value.
func (s *Step[T]) Data() T {
	return cloneValue(s.data)
}

// Set replaces the current value.
func (s *Step[T]) Set(next T) {
	s.data = cloneValue(next)
}

// Update applies fn to a copy of the current value and stores the result.
func (s *Step[T]) Update(fn func(T) T) {
	s.Set(fn(s.Data()))
}

// Defaults returns the values the step was created with.
func (s *Step[T]) Defaults() T {
	return cloneValue(s.defaults)
}

// Reset restores the defaults.
func (s *Step[T]) Reset() {
	s.data = cloneValue(s.defaults)
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	return v
}
