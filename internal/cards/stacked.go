package cards

import "fmt"

// StackedSource is a Source that deals a fixed sequence of card values.
// Use it to replay a known deal or to script draws in tests.
type StackedSource struct {
	values []int
	next   int
}

// NewStackedSource returns a source dealing values in order. It panics if a
// value lies outside [MinValue, MaxValue].
func NewStackedSource(values ...int) *StackedSource {
	for _, v := range values {
		if v < MinValue || v > MaxValue {
			panic(fmt.Sprintf("stacked card value %d outside [%d, %d]", v, MinValue, MaxValue))
		}
	}
	return &StackedSource{values: values}
}

// IntN returns the offset of the next stacked value. It panics once the stack
// is exhausted or when n does not span the card range.
func (s *StackedSource) IntN(n int) int {
	if n != MaxValue-MinValue+1 {
		panic(fmt.Sprintf("stacked source only deals cards, got IntN(%d)", n))
	}
	if s.next >= len(s.values) {
		panic("stacked source exhausted")
	}
	v := s.values[s.next]
	s.next++
	return v - MinValue
}

// Remaining returns how many values have not been dealt yet
func (s *StackedSource) Remaining() int {
	return len(s.values) - s.next
}
