// Package errors provides the error taxonomy for model selection.
// Every constructor attaches a stack trace via cockroachdb/errors, and
// every error type knows how to marshal itself as a zerolog object so
// failures surface as structured log events.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// InvalidGridError reports a malformed hyperparameter search space.
// It is always a caller bug and never retried.
type InvalidGridError struct {
	Param  string
	Reason string
}

func (e *InvalidGridError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("modelselect: invalid grid: parameter %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("modelselect: invalid grid: %s", e.Reason)
}

// MarshalZerologObject adds the structured grid failure to a zerolog event.
func (e *InvalidGridError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Str("reason", e.Reason).
		Str("type", "InvalidGridError")
}

// NewInvalidGridError creates a new InvalidGridError with a stack trace.
func NewInvalidGridError(param, reason string) error {
	err := &InvalidGridError{Param: param, Reason: reason}
	return errors.WithStack(err)
}

// InvalidFoldCountError reports a fold count outside the valid range
// 2 <= k <= number of records. It is always a caller bug.
type InvalidFoldCountError struct {
	K        int
	NRecords int
}

func (e *InvalidFoldCountError) Error() string {
	return fmt.Sprintf("modelselect: invalid fold count k=%d for %d records (need 2 <= k <= n)", e.K, e.NRecords)
}

// MarshalZerologObject adds the structured fold failure to a zerolog event.
func (e *InvalidFoldCountError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("k", e.K).
		Int("n_records", e.NRecords).
		Str("type", "InvalidFoldCountError")
}

// NewInvalidFoldCountError creates a new InvalidFoldCountError with a stack trace.
func NewInvalidFoldCountError(k, nRecords int) error {
	err := &InvalidFoldCountError{K: k, NRecords: nRecords}
	return errors.WithStack(err)
}

// CandidateEvaluationError reports a fit or score failure for one
// hyperparameter combination on one fold. It aborts the whole search:
// cross-validated comparisons are only meaningful when every candidate
// was evaluated under identical conditions.
type CandidateEvaluationError struct {
	Combination map[string]interface{}
	Fold        int
	Stage       string // "fit", "score" or "refit"
	Err         error
}

func (e *CandidateEvaluationError) Error() string {
	return fmt.Sprintf("modelselect: candidate %v failed during %s on fold %d: %v", e.Combination, e.Stage, e.Fold, e.Err)
}

func (e *CandidateEvaluationError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured candidate failure to a zerolog event.
func (e *CandidateEvaluationError) MarshalZerologObject(event *zerolog.Event) {
	event.Interface("combination", e.Combination).
		Int("fold", e.Fold).
		Str("stage", e.Stage).
		AnErr("cause", e.Err).
		Str("type", "CandidateEvaluationError")
}

// NewCandidateEvaluationError creates a new CandidateEvaluationError with a stack trace.
func NewCandidateEvaluationError(combination map[string]interface{}, fold int, stage string, cause error) error {
	err := &CandidateEvaluationError{Combination: combination, Fold: fold, Stage: stage, Err: cause}
	return errors.WithStack(err)
}

// NotFittedError is returned when Predict or Explain is called on a model
// that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("modelselect: %s: model is not fitted. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured fit-state failure to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a length or shape mismatch between two inputs,
// e.g. a prediction vector shorter than its truth vector.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("modelselect: %s: dimension mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured dimension failure to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is out of the operation's
// domain, e.g. an empty vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("modelselect: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no records.
	ErrEmptyData = New("empty data")

	// ErrUnknownFeature is returned when a record lacks a feature a model
	// needs for prediction.
	ErrUnknownFeature = New("unknown feature")
)
