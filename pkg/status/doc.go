// Package status defines the shared status-code space used across the
// DDC/CI stack.
//
// Status codes come from three independent sources whose raw values
// collide: operating system errno values, the vendor display API (ADL),
// and DDC/CI protocol conditions detected by this module. Each source is a
// Domain with a disjoint numeric range. A domain-local code is moved into
// the shared space by modulation (adding the domain base, preserving sign)
// and recovered by demodulation.
//
// # Ranges
//
//	Errno   1000..1999   negative errno values, e.g. -EIO -> -1005
//	ADL     2000..2999   vendor API codes (only with the "adl" build tag)
//	DDC     3000..3999   protocol codes (DDCRC_*), already modulated
//
// Zero is success in every domain and is never shifted.
//
// # Registry
//
// A Registry holds the domains and their descriptor tables. It is built
// once, validated, and never mutated afterwards, so it is safe for
// concurrent readers. Default returns the process-wide registry; tests and
// embedders can build their own with NewRegistry.
//
// # Errors
//
// Error wraps a Code as a Go error. FromError maps arbitrary errors
// (syscall.Errno, context errors, values implementing Coder) back into the
// shared space.
package status
