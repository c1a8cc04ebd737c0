// Package hypothesis holds the presentation side of the reasoning cycle: the
// default natural-language hypothesis template, the Fibonacci melody
// synthesizer and the final report renderer. The computational core returns
// structured data only; everything in this package is a swappable formatter
// over that data.
package hypothesis
