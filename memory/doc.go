// Package memory contains concrete cycle.Memory implementations. The Memory
// interface and its record types reside in the cycle package; depend on
// cycle.Memory in your code and select an implementation (like the in-memory
// store below) at wiring time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends to be added without introducing dependency cycles.
package memory
