package ports

// ExecutableFinder resolves program names against an ordered list of directories.
type ExecutableFinder interface {
	// Find returns the path of the first executable named name. It returns
	// an error wrapping execution.ErrCommandNotFound if there is none.
	Find(name string) (string, error)

	// Candidates lists executable names starting with prefix, sorted and de-duplicated.
	Candidates(prefix string) []string
}
