// Package alert implements the two-stage alert pipeline: a signal-analysis
// stage that propagates raw energy through a fixed sensor graph and a
// synthesis stage that turns the resulting tactical record into an air-alert
// notification. Each stage is a pure function over a per-call graph with a
// fixed output schema, validated at the stage boundary; the only data-driven
// branch is the high/low energy switch.
package alert
