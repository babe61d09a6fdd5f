// Package logic holds the data model of the sequent prover: propositional
// formulas, two-sided claims (sequents) and derivation trees.
//
// All three are closed sum types expressed as sealed interfaces. Values are
// immutable once built; operations that "change" a claim return a new one.
//
// Formula variants:
//   - Bottom       falsity
//   - Literal      atomic proposition
//   - Not          negation
//   - And, Or      conjunction, disjunction
//   - Implication  material implication
//
// Tree variants:
//   - Open      a claim still waiting for a rule
//   - Complete  a claim closed by a rule, with one subtree per premise
package logic
