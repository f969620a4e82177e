// Package cpuid decodes the raw register output of the x86 CPUID
// instruction into typed, queryable views of processor identity,
// feature flags, cache topology and platform capabilities.
//
// The package never interprets register contents speculatively: every
// accessor masks exactly the bit range the Intel SDM or AMD APM
// documents for that field, and a leaf that the processor (or the
// processor's vendor) does not report is returned as absent rather
// than decoded into a meaningless view.
//
// All queries go through a LeafSource. The default source executes the
// CPUID instruction; tests and offline tooling substitute a source
// backed by captured register dumps (see the dump subpackage).
package cpuid
