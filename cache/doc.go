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


// Package cache provides a disk-backed embedding cache with time-based
// expiry.
//
// Entries are keyed by a BLAKE2b hash of at most the first 100 characters
// of the embedded text. This is a deliberate, collision-accepting
// optimization carried over from the system's origins: two long texts
// sharing a 100-character prefix share a cache slot. Callers trade a
// vanishingly rare stale hit for much cheaper keys.
//
// Entries older than the configured expiry are treated as absent and
// purged lazily on lookup; CleanupExpired removes them eagerly. Unreadable
// entries (version skew, partial writes) are treated as absent and
// dropped, never surfaced as errors: the cache fails open to recomputing
// the embedding.
//
// The store is safe for concurrent use.
package cache
