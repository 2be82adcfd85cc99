// Copyright 2025 Versine Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package match implements the embedding-based matching engine.
//
// A Matcher owns the embedder, the embedding cache, and a worker pool, and
// exposes the core operations: scoring a query against a text
// (ComputeSimilarity), ranking a candidate song list (FindSimilarSongs),
// merging scores across several query variants
// (FindBestMatchesMultiQuery), and reducing a long text to its most
// representative sentences (ExtractKeyPhrases).
//
// Long texts are split into overlapping sentence-boundary-aware chunks;
// each chunk is embedded (cache-checked) and scored against the query
// embedding, and the best-scoring chunk supplies both the score and the
// excerpt. Chunk embeddings may run concurrently on the worker pool; the
// scoring itself is order-independent per chunk and the winning chunk is
// selected by index order afterwards, so results are identical to
// sequential evaluation.
//
// One Matcher is meant to be constructed per process and shared by the
// compare and verse packages, so all consumers reuse the same cache.
package match
