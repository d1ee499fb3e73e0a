package memory

// Entry is a single context note. Keys are /-separated paths relative to the
// store root; values are the raw file contents.
type Entry struct {
	Key   string
	Value []byte
}
