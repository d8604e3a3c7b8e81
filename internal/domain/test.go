package domain

import "sort"

// TestStatus records what is known about one declared test after aggregation
type TestStatus struct {
	Executed bool `json:"executed"`
	ASan     bool `json:"asan"`
	UBSan    bool `json:"ubsan"`
}

// StatusMap maps declared test names to their status
type StatusMap map[string]TestStatus

// Declare adds name with a zero status. Redeclaring keeps the existing status.
func (m StatusMap) Declare(name string) {
	if _, ok := m[name]; !ok {
		m[name] = TestStatus{}
	}
}

// Names returns all declared test names in lexical order
func (m StatusMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m StatusMap) filter(keep func(TestStatus) bool) []string {
	var names []string
	for _, name := range m.Names() {
		if keep(m[name]) {
			names = append(names, name)
		}
	}
	return names
}

// Executed returns the tests that ran, sorted
func (m StatusMap) Executed() []string {
	return m.filter(func(s TestStatus) bool { return s.Executed })
}

// NotExecuted returns declared tests that never ran, sorted
func (m StatusMap) NotExecuted() []string {
	return m.filter(func(s TestStatus) bool { return !s.Executed })
}

// MissingASan returns tests never seen in an ASan job, sorted
func (m StatusMap) MissingASan() []string {
	return m.filter(func(s TestStatus) bool { return !s.ASan })
}

// MissingUBSan returns tests never seen in a UBSan job, sorted
func (m StatusMap) MissingUBSan() []string {
	return m.filter(func(s TestStatus) bool { return !s.UBSan })
}

// CompletionMarkers are the tool markers found anywhere in one completion log
type CompletionMarkers struct {
	ASan     bool
	UBSan    bool
	Valgrind bool
	UnitTest bool
}

// UnitTestWithValgrind reports whether the log shows unit tests run under valgrind
func (c CompletionMarkers) UnitTestWithValgrind() bool {
	return c.Valgrind && c.UnitTest
}

// CompletionLog is a parsed test_completions.txt
type CompletionLog struct {
	Path    string
	Markers CompletionMarkers
	Lines   []string // trimmed, in file order
}
