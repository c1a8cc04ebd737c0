// Package knowledge holds the seed graph definitions, separated from the
// computational core: the science-geometry-music knowledge base driving the
// reasoning cycle, the two fixed graphs of the alert pipeline, and a YAML
// loader so alternative knowledge bases can be supplied without recompiling.
package knowledge
