// Package errs defines the error vocabulary of the foodcourt application.
//
// Two families of errors live here:
//
//   - BusinessError carries a stable machine-readable code (for example
//     ORDER_NOT_FOUND or CUSTOMER_HAS_ACTIVE_ORDER) next to a human-readable
//     message. The codes are the HTTP layer's contract: handlers map them to
//     status codes, and clients branch on them. Two BusinessErrors match via
//     errors.Is when their codes are equal, so sentinels such as
//     ErrOrderAlreadyAssigned can be compared against wrapped errors.
//
//   - Value errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError and friends) report
//     construction and lookup failures. Each follows the same pattern: a
//     sentinel variable, a struct with the failure details, constructors with
//     and without an underlying cause, and Error/Unwrap methods so that
//     errors.Is against the sentinel works through wrapping.
//
// Validating constructors collect value errors with errors.Join, which keeps
// every violated rule in a single returned error instead of stopping at the
// first one.
package errs
