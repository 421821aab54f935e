package plan

import (
	"errors"
	"fmt"
)

const (
	// EmptyInputMessage is shown when the input box is blank on submit.
	EmptyInputMessage = "Please enter your tasks or syllabus."
	// GenerationFailedMessage is the only generation failure text users see.
	GenerationFailedMessage = "Sorry, I had trouble creating your plan. Please check your input or try again later."
)

var (
	ErrEmptyInput           = errors.New(EmptyInputMessage)
	ErrGeneration           = errors.New("failed to parse or receive a valid plan from the AI")
	ErrGenerationTimeout    = errors.New("plan generation timed out")
	ErrGenerationCancelled  = errors.New("plan generation was cancelled or superseded")
	ErrInvalidTone          = errors.New("invalid tone")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrItemNotFound         = errors.New("plan item not found")
	ErrNotificationsBlocked = errors.New("notifications blocked")
	ErrSessionNotFound      = errors.New("session not found")
)

// GenerationError reports why a plan could not be produced. It matches
// ErrGeneration with errors.Is and unwraps to the underlying cause.
type GenerationError struct {
	Stage string
	Err   error
}

func newGenerationError(stage string, err error) *GenerationError {
	return &GenerationError{Stage: stage, Err: err}
}

// NewGenerationError wraps err as a failure of the given stage.
func NewGenerationError(stage string, err error) *GenerationError {
	return newGenerationError(stage, err)
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("plan generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}
