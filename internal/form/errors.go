package form

import (
	"errors"
	"fmt"
)

// Rule identifies a validation rule, in the order rules are evaluated
type Rule int

const (
	RuleRequiredFields Rule = iota + 1
	RuleWeightedFields
	RuleDuration
	RuleReps
	RuleChoice
	RuleNumber
)

var (
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrMissingWeightedFields = errors.New("missing weighted fields")
	ErrMissingDuration       = errors.New("missing duration")
	ErrMissingReps           = errors.New("missing reps")
	ErrInvalidChoice         = errors.New("invalid choice")
	ErrInvalidNumber         = errors.New("invalid number")
)

// ValidationError is a user-input failure. Err is one of the sentinel errors above.
type ValidationError struct {
	Rule  Rule
	Field string
	Err   error
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Blocking reports whether the failure stops a commit on its own.
// A missing required field only blocks in strict mode.
func (e *ValidationError) Blocking(strict bool) bool {
	if e.Rule == RuleRequiredFields {
		return strict
	}
	return true
}

func missingRequired(field string) *ValidationError {
	return &ValidationError{
		Rule:  RuleRequiredFields,
		Field: field,
		Err:   ErrMissingRequiredField,
		Msg:   "Please fill in name, sets and rest",
	}
}

func missingWeighted(field string) *ValidationError {
	return &ValidationError{
		Rule:  RuleWeightedFields,
		Field: field,
		Err:   ErrMissingWeightedFields,
		Msg:   "Weighted exercises need reps and a target weight",
	}
}

func missingDuration() *ValidationError {
	return &ValidationError{
		Rule:  RuleDuration,
		Field: "duration",
		Err:   ErrMissingDuration,
		Msg:   "Time-based exercises need a duration",
	}
}

func missingReps() *ValidationError {
	return &ValidationError{
		Rule:  RuleReps,
		Field: "reps",
		Err:   ErrMissingReps,
		Msg:   "Bodyweight exercises need reps",
	}
}

func invalidChoice(field, value string) *ValidationError {
	return &ValidationError{
		Rule:  RuleChoice,
		Field: field,
		Err:   ErrInvalidChoice,
		Msg:   fmt.Sprintf("Unknown %s %q", field, value),
	}
}

func invalidNumber(field, hint string) *ValidationError {
	return &ValidationError{
		Rule:  RuleNumber,
		Field: field,
		Err:   ErrInvalidNumber,
		Msg:   fmt.Sprintf("%s must be %s", field, hint),
	}
}
