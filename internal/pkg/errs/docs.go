// Package errs provides the typed errors shared by the domain, the use cases and
// the HTTP adapter.
//
// Every error type follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrTransitionIsForbidden, ...)
//     used with errors.Is by callers that map errors to responses
//   - a struct carrying the details
//   - constructors, with and without a cause where a cause makes sense
//   - Error() for the message and Unwrap() returning the sentinel
//
// TransitionIsForbiddenError and ActionIsForbiddenError describe authorization
// denials; VersionConflictError reports a lost optimistic-lock race.
package errs
