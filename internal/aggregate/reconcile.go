package aggregate

import "covproc/internal/domain"

// Reconciler folds manifests and completion logs into a StatusMap
type Reconciler struct {
	// StrictUBSan derives a test's UBSan status from its own prior UBSan
	// status. When false the prior ASan status is used, which is what the
	// legacy CI summaries report.
	StrictUBSan bool

	tests                domain.StatusMap
	unitTestWithValgrind bool
}

// NewReconciler creates an empty Reconciler
func NewReconciler(strictUBSan bool) *Reconciler {
	return &Reconciler{
		StrictUBSan: strictUBSan,
		tests:       domain.StatusMap{},
	}
}

// Declare adds manifest names. Duplicates collapse.
func (r *Reconciler) Declare(names []string) {
	for _, name := range names {
		r.tests.Declare(name)
	}
}

// Apply marks every declared test named in log as executed and ORs in the log's sanitizer flags.
// Lines that are not declared tests are ignored.
func (r *Reconciler) Apply(log domain.CompletionLog) {
	if log.Markers.UnitTestWithValgrind() {
		r.unitTestWithValgrind = true
	}

	for _, line := range log.Lines {
		prior, ok := r.tests[line]
		if !ok {
			continue
		}
		ubsanPrior := prior.ASan
		if r.StrictUBSan {
			ubsanPrior = prior.UBSan
		}
		r.tests[line] = domain.TestStatus{
			Executed: true,
			ASan:     log.Markers.ASan || prior.ASan,
			UBSan:    log.Markers.UBSan || ubsanPrior,
		}
	}
}

// Tests returns the reconciled statuses
func (r *Reconciler) Tests() domain.StatusMap {
	return r.tests
}

// UnitTestWithValgrind reports whether any log showed unit tests under valgrind
func (r *Reconciler) UnitTestWithValgrind() bool {
	return r.unitTestWithValgrind
}
