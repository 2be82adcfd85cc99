// Package mood classifies song lyrics into emotional categories using
// bilingual keyword presets, and augments search queries with mood terms.
//
// Classification is deliberately lexical rather than embedding-based:
// keyword hits against ten fixed presets produce per-mood scores, a primary
// mood, and a confidence value. The presets double as search helpers,
// supplying query terms and display metadata for each mood.
package mood
