package geometry

import "fmt"

// SurveyError represents a survey precondition failure
type SurveyError struct {
	Code    string
	Message string
}

func (e *SurveyError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var (
	// ErrEmptyPlan means the plan held no instructions at all; reported
	// distinctly so "nothing to dig" is never confused with a computed
	// zero area.
	ErrEmptyPlan = &SurveyError{Code: "EMPTY_PLAN", Message: "dig plan contains no instructions"}

	// ErrOpenLoop means the dug path did not return to its starting cell.
	// Filling an open loop would silently leak, so it is rejected before
	// the fill runs.
	ErrOpenLoop = &SurveyError{Code: "OPEN_LOOP", Message: "trench path does not close back on its start"}
)
