// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (tables, bordered panels)
//
// Not allowed here:
// - key handling, fetch state, or filter logic
package widgets
