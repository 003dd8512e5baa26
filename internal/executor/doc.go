// Package executor compiles fixture models into programs and runs them on the
// reference operator registry.
//
// A Program is immutable after Compile and may be run concurrently from
// several goroutines: every Run owns its intermediate tensors.
package executor
