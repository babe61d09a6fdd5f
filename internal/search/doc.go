// Package search turns an open claim into a derivation tree.
//
// For every open node the rules are tried in a fixed priority order
// (DefaultOrder unless configured otherwise). The first rule that fires
// replaces the node with a Complete node whose premises are searched in
// turn; when nothing fires the node stays Open. Not being provable is
// therefore a value in the result, never an error.
//
// Every decomposing rule removes one connective from the claim, so search
// always terminates and its depth is bounded by the size of the input.
//
// The calculus keeps the full context in both premises of a branching rule
// and all of its rules are invertible. Because of that the missing
// contraction rule costs nothing on propositional input: a claim closes
// exactly when it is classically valid, whatever admissible order is used.
package search
