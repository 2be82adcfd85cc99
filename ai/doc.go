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


// Package ai abstracts the text embedding service used for semantic
// matching.
//
// The matching engine depends only on the Embedder interface: text in,
// fixed-length vector out. Two implementations ship with the module:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: deterministic test doubles with injectable behavior
//
// Constructors in ai/openai return the Embedder interface to keep callers
// decoupled from the concrete client; mock constructors return concrete
// types so tests can reach assertion helpers.
package ai
