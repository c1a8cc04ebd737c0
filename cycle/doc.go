// Package cycle implements the reasoning cycle controller: one Step injects
// raw signal energy into the graph, lets it settle, scores confluence points
// and either accepts the top candidate as a derived principle (generating a
// hypothesis), reports it as already confirmed, or reports that the
// confidence threshold was not reached.
//
// The accepted-principles record and the hypothesis log live behind the
// Memory interface and are owned by the caller, never by this package. That
// keeps cycle state explicit and swappable; the in-memory implementation
// lives in the memory package.
package cycle
