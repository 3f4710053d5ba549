package imgbin

// Result is the outcome of converting a single file.
type Result struct {
	Input  string
	Output string
	Width  int
	Height int
	// Size is the number of bytes written
	Size int
	// Cached is set when the output came from the Store
	Cached bool
	Err    error
}

// OK reports whether the file was converted.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary collects the results of a directory conversion, ordered by input
// path.
type Summary struct {
	Results []Result
}

// Total returns the number of files attempted.
func (s Summary) Total() int {
	return len(s.Results)
}

// Converted returns the number of files converted successfully.
func (s Summary) Converted() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the unsuccessful results.
func (s Summary) Failed() (failed []Result) {
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return
}

// OK reports whether at least one file was converted.
func (s Summary) OK() bool {
	return s.Converted() > 0
}
