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

package compare

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords is the combined Italian and English stopword set used when
// extracting meaningful vocabulary from lyrics.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// Italian
		"il", "lo", "la", "i", "gli", "le", "un", "uno", "una",
		"di", "da", "in", "con", "su", "per", "tra", "fra",
		"che", "chi", "cui", "quale", "quanto",
		"e", "o", "ma", "però", "se", "come", "quando", "dove",
		"non", "più", "già", "ancora", "mai", "sempre", "solo",
		"mi", "ti", "ci", "vi", "si", "me", "te", "lui", "lei", "noi", "voi", "loro",
		"mio", "tuo", "suo", "nostro", "vostro",
		"questo", "quello", "cosa", "tutto", "ogni", "altro",
		"essere", "avere", "fare", "dire", "andare", "venire",
		"è", "sono", "sei", "siamo", "siete", "ho", "hai", "ha", "abbiamo",
		// English
		"the", "a", "an", "and", "or", "but", "if", "then", "when", "where",
		"is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could", "should",
		"i", "you", "he", "she", "it", "we", "they", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their",
		"this", "that", "these", "those", "what", "which", "who", "whom",
		"to", "of", "on", "at", "by", "for", "with", "from", "into",
		"no", "yes", "just", "only", "also", "so", "as", "than",
		"all", "some", "any", "every", "each", "both", "few", "more", "most",
		"oh", "yeah", "uh", "ah", "ooh", "na",
	} {
		stopwords[w] = struct{}{}
	}
}

// meaningfulWords extracts the distinct content words of a text: lowercased,
// stripped of non-letters, longer than two characters and not a stopword.
func meaningfulWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		var b strings.Builder
		for _, r := range raw {
			if unicode.IsLetter(r) {
				b.WriteRune(r)
			}
		}
		word := b.String()
		if len([]rune(word)) <= 2 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		words[word] = struct{}{}
	}
	return words
}

// vocabularyOverlap computes the Jaccard similarity of the two songs'
// meaningful vocabularies, plus the 15 shared words that occur most often
// across both texts combined. Frequency ties resolve alphabetically.
func vocabularyOverlap(lyrics1, lyrics2 string) (float64, []string) {
	words1 := meaningfulWords(lyrics1)
	words2 := meaningfulWords(lyrics2)

	if len(words1) == 0 || len(words2) == 0 {
		return 0, nil
	}

	shared := make(map[string]struct{})
	for w := range words1 {
		if _, ok := words2[w]; ok {
			shared[w] = struct{}{}
		}
	}

	union := len(words1) + len(words2) - len(shared)
	overlap := float64(len(shared)) / float64(union)

	counts := make(map[string]int)
	for _, raw := range strings.Fields(strings.ToLower(lyrics1 + " " + lyrics2)) {
		if _, ok := shared[raw]; ok {
			counts[raw]++
		}
	}

	keywords := make([]string, 0, len(counts))
	for w := range counts {
		keywords = append(keywords, w)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > 15 {
		keywords = keywords[:15]
	}
	return overlap, keywords
}
