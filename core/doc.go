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


// Package core defines the domain model shared by all lyricmatch packages.
//
// The central type is Song, a record supplied by a lyrics source such as
// the genius package. Songs are treated as immutable inputs once handed to
// the matching, comparison, and verse-search components; the only internal
// mutation is the lazy memoization of the cleaned lyrics text.
//
// The remaining types (MatchResult, VerseMatch, ThemeMatch, ...) are value
// objects produced per call and owned by the caller. Nothing in this module
// retains references to them after returning.
package core
