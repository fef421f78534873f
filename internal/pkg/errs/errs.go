package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrTransitionIsForbidden = errors.New("transition is forbidden")
	ErrActionIsForbidden     = errors.New("action is forbidden")
	ErrVersionConflict       = errors.New("version conflict")
)

// sanitize keeps user-supplied values on a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an entity cannot be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TransitionIsForbiddenError is returned when a role may not move an entity from
// one status to another. AllowedStatuses carries every status the role could ever
// set, so the message can tell the caller what it is allowed to do instead.
type TransitionIsForbiddenError struct {
	Role            string
	From            string
	To              string
	AllowedStatuses []string
}

func NewTransitionIsForbiddenError(role, from, to string, allowedStatuses []string) *TransitionIsForbiddenError {
	allowed := make([]string, len(allowedStatuses))
	copy(allowed, allowedStatuses)
	return &TransitionIsForbiddenError{Role: role, From: from, To: to, AllowedStatuses: allowed}
}

func (e *TransitionIsForbiddenError) Error() string {
	allowed := "none"
	if len(e.AllowedStatuses) > 0 {
		allowed = strings.Join(e.AllowedStatuses, ", ")
	}
	return fmt.Sprintf("%s: role %s cannot change status from %s to %s (allowed statuses: %s)",
		ErrTransitionIsForbidden, e.Role, e.From, e.To, allowed)
}

func (e *TransitionIsForbiddenError) Unwrap() error {
	return ErrTransitionIsForbidden
}

// ActionIsForbiddenError is returned when a role may not perform an action at all.
type ActionIsForbiddenError struct {
	Role   string
	Action string
}

func NewActionIsForbiddenError(role, action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Role: role, Action: action}
}

func (e *ActionIsForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s cannot %s", ErrActionIsForbidden, e.Role, e.Action)
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// VersionConflictError is returned when an optimistic update finds that the
// stored version moved on since the entity was read.
type VersionConflictError struct {
	Entity  string
	ID      any
	Version int
}

func NewVersionConflictError(entity string, id any, version int) *VersionConflictError {
	return &VersionConflictError{Entity: entity, ID: id, Version: version}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v is no longer at version %d", ErrVersionConflict, e.Entity, e.ID, e.Version)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
