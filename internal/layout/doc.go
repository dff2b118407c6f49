// Package layout resolves files in a generator's output tree when the exact
// layout is uncertain. Each logical role (root component, entry module, layout,
// page) maps to an ordered list of candidate paths per language; the first one
// that exists wins, otherwise the first candidate is the write target.
package layout
