package Trees

// ExhaustedSequenceError is returned when reading from a Sequence that has no more values.
type ExhaustedSequenceError struct {
}

func (e *ExhaustedSequenceError) Error() string {
	return "Sequence is exhausted: cannot Next."
}

// UnorderableTypeError is returned when a tree is created without an ordering
// and the element type has no natural one.
type UnorderableTypeError struct {
	Type string
}

func (e *UnorderableTypeError) Error() string {
	return "no ordering available for type " + e.Type
}

// InvalidOrderError is the panic value of Traverse for an unknown Order, and the
// error of ParseOrder for an unknown name.
type InvalidOrderError struct {
	Order Order
	Name  string
}

func (e InvalidOrderError) Error() string {
	if e.Name != "" {
		return "invalid traversal order " + `"` + e.Name + `"`
	}
	return "invalid traversal order " + e.Order.String()
}
