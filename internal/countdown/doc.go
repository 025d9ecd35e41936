// Package countdown implements the core event pipeline: filtering stored
// events against a reference instant, ordering the survivors, and capping
// the result for display.
//
// Every stage returns a fresh slice and leaves its input untouched, so the
// pipeline is safe to call from concurrent hosts as long as each call gets
// its own input. The only non-determinism is OrderShuffle, which draws from
// the process-wide random source.
package countdown
