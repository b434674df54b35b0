// Package ragavm implements the Ragaraja genome interpreter.
//
// A genome is a string of fixed-width codons. Each codon selects one of 1000
// opcodes; the opcodes live for a run are chosen by activating a version,
// which derives a fresh instruction set from the canonical table. Execution
// mutates a numeric tape, consumes an input queue and appends to an output
// list. A step cap bounds every run.
package ragavm
