// Package errs provides the error taxonomy of the ordering service.
//
// Every error kind has a sentinel that callers match with errors.Is:
//   - ErrObjectNotFound: a referenced order, item or logistics record is absent
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: input validation
//   - ErrInvalidState: the operation is not allowed from the current status
//   - ErrCollaboratorFailure: the catalog, address or payment service failed
//   - ErrConcurrentModification: a concurrent transaction changed the same order
//
// Each kind has a struct type carrying the details, constructors with and
// without a cause, and an Unwrap method returning the sentinel. CodedError
// adds a stable business code on top of a kind and is what the domain
// declares its rule violations with.
package errs
