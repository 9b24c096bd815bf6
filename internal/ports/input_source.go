package ports

// InputSource reads a puzzle input as lines.
type InputSource interface {
	ReadLines(path string) ([]string, error)
}
