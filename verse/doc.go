// Package verse searches song lyrics line by line.
//
// A Searcher matches a query against individual lyric lines in one of
// three modes: exact substring, fuzzy string similarity, or semantic
// similarity through the shared matcher. Matches carry their section
// (verse, chorus, bridge) detected from bracketed headers in the lyrics,
// plus surrounding context lines.
//
// The package also provides line-level analytics: verse extraction,
// repetition counts, cross-song rhyme grouping and per-song statistics.
package verse
