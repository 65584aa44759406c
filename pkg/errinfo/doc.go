// Package errinfo records why an operation failed.
//
// An ErrorInfo is a tree: a status code, the function that produced it,
// and the ordered causes that led to it. The typical shape is a
// "retries exhausted" node (DDCRC_RETRIES) with one leaf per failed attempt,
// built by NewRetries. RetryHistory is a lighter, flat view of the same
// attempt sequence; ToErrorInfo converts one into the other.
//
// *ErrorInfo implements error. errors.Is matches status codes anywhere in
// the tree:
//
//	if errors.Is(err, status.Err(status.DDCNullResponse)) { ... }
//
// Neither type is safe for concurrent mutation.
package errinfo
