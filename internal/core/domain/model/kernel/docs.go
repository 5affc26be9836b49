// Package kernel contains shared value objects used across domain aggregates:
// identifiers, geographic points, addresses, and monetary rounding. All types
// are immutable and validated at construction, so aggregates can rely on a
// kernel value being well-formed once it exists.
package kernel
