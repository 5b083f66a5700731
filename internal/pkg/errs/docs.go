// Package errs provides standardized error types for the order tracking service.
//
// The package includes one error type per failure class the service reports:
//   - ObjectNotFoundError: a referenced record does not exist
//   - ValueIsInvalidError: a supplied value cannot be used
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// The HTTP adapter turns the sentinels into response statuses, so every layer
// reports failures through these types rather than ad-hoc strings.
package errs
