// Package pattern scores confluence points in an activation graph: for every
// typed node it sums the weights of incoming edges and ranks the results
// descending. The top-ranked node is the most promising candidate principle;
// its confidence is the score normalized by in-degree and gates acceptance in
// the cycle controller.
package pattern
