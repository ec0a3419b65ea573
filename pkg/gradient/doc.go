// Package gradient defines the gradient configuration model.
//
// A [Config] holds everything needed to generate a gradient background:
// the gradient type (linear or radial), the angle for linear gradients,
// an ordered list of color stops, and optional procedural noise parameters.
//
// # Invariants
//
// Every Config produced by this package maintains:
//   - Stops sorted ascending by offset. Consumers may rely on the order
//     without re-sorting.
//   - At least two stops. [Config.RemoveStop] is a no-op when only two
//     stops remain.
//   - All numeric fields within their domains (angle [0,360), offset
//     [0,100], noise frequency [0.001,0.1], octaves [1,8], scale [0,100]).
//
// Mutation methods are value-based: they return a new validated Config and
// never modify the receiver, so a caller can hold the previous state for
// undo or comparison.
//
// # Example
//
//	cfg := gradient.Default()
//	cfg, stop := cfg.AddStop()
//	cfg, err := cfg.UpdateStop(stop.ID, "#ff8800", 25)
package gradient
