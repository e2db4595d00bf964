package engine

// Target is a falling object bearing one symbol
// ID and Symbol never change; X is fixed at spawn; only the drop tick moves Y
type Target struct {
	ID     uint64
	Symbol rune
	X      float64
	Y      float64
}
