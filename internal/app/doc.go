// Package app wires the timer together: it owns the logger, the font
// registry, and the run lifecycle from resolving the target instant to the
// completion alert.
package app
