package domain

import "fmt"

// StageStatus is the outcome of one processing stage
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageSkipped   StageStatus = "skipped"
	StageFailed    StageStatus = "failed"
)

// StageResult represents the result of running one stage
type StageResult struct {
	Stage   string      // Stage name, e.g. "coverage" or "collect doc"
	Status  StageStatus // What happened
	Message string      // Human-readable detail
	Err     error       // Error that aborted the stage, if any
}

// Completed returns a completed result for stage
func Completed(stage, format string, args ...any) StageResult {
	return StageResult{Stage: stage, Status: StageCompleted, Message: fmt.Sprintf(format, args...)}
}

// Skipped returns a skipped result for stage
func Skipped(stage, format string, args ...any) StageResult {
	return StageResult{Stage: stage, Status: StageSkipped, Message: fmt.Sprintf(format, args...)}
}

// Failed returns a failed result for stage carrying err
func Failed(stage string, err error, format string, args ...any) StageResult {
	return StageResult{Stage: stage, Status: StageFailed, Message: fmt.Sprintf(format, args...), Err: err}
}

// OK reports whether the stage did not fail
func (r StageResult) OK() bool {
	return r.Status != StageFailed
}

func (r StageResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", r.Stage, r.Status, r.Message, r.Err)
	}
	return fmt.Sprintf("%s: %s: %s", r.Stage, r.Status, r.Message)
}

// Command is one external tool invocation
type Command struct {
	Name string
	Args []string
}

// SummaryMeta contains counts about an aggregation run
type SummaryMeta struct {
	DeclaredTests        int    `json:"declared_tests"`
	ExecutedTests        int    `json:"executed_tests"`
	ManifestFiles        int    `json:"manifest_files"`
	CompletionFiles      int    `json:"completion_files"`
	UnitTestWithValgrind bool   `json:"unittest_with_valgrind"`
	Timestamp            string `json:"timestamp"`
}

// Summary is the complete aggregation output
type Summary struct {
	Meta         SummaryMeta `json:"meta"`
	Executed     []string    `json:"executed"`
	NotExecuted  []string    `json:"not_executed"`
	MissingASan  []string    `json:"missing_asan"`
	MissingUBSan []string    `json:"missing_ubsan"`
}
