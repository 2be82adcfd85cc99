// Package compare analyzes how similar two or more songs are.
//
// A Comparator combines four independent signals: overall semantic
// similarity of the full lyrics, the closest verse pairs across the two
// texts, shared mood-derived themes, and vocabulary overlap. Pairwise
// comparison produces a ComparisonResult; CompareMultiple builds the full
// pairwise similarity matrix and surfaces the closest and most distant
// pair.
package compare
