// Package plan expands a validated wrapper declaration into the concrete
// emission plan: every identifier the generated file will declare, the
// filename it lands in, and which optional sections (text bundle, container
// conversions) apply.
//
// Expansion is deterministic: the same declaration always yields the same
// plan, so the same input always yields byte-identical generated output.
package plan
