// Package errs provides the standardized error types shared by the ordering domain.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that value objects and aggregates use to report invalid input.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing or blank
//   - ValueIsInvalidError: a value is present but breaks a rule
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object looked up by identifier does not exist
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Domain packages build their own rule-violation errors (for example an order
// status that cannot change) on top of the same shape.
package errs
