// Package harness replays fixture examples on the reference kernels and
// reports which outputs match their expected values.
package harness
