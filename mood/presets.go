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

package mood

// Preset describes one searchable mood: its keywords in both languages,
// suggested search terms, and display metadata.
type Preset struct {
	Name        string
	Description string
	KeywordsIT  []string
	KeywordsEN  []string
	SearchTerms []string
	Color       string
}

// AllKeywords returns the Italian and English keywords combined, Italian
// first.
func (p Preset) AllKeywords() []string {
	all := make([]string, 0, len(p.KeywordsIT)+len(p.KeywordsEN))
	all = append(all, p.KeywordsIT...)
	all = append(all, p.KeywordsEN...)
	return all
}

// moodOrder fixes the iteration order over presets so analysis output and
// tie-breaking are deterministic.
var moodOrder = []string{
	"happy", "sad", "romantic", "energetic", "calm",
	"angry", "nostalgic", "hopeful", "rebellious", "dreamy",
}

var presets = map[string]Preset{
	"happy": {
		Name:        "Felice",
		Description: "Canzoni allegre e positive",
		KeywordsIT:  []string{"felice", "gioia", "allegria", "sorriso", "festa", "ballare", "ridere", "amore"},
		KeywordsEN:  []string{"happy", "joy", "smile", "party", "dance", "laugh", "love", "celebration"},
		SearchTerms: []string{"happy song", "feel good", "party anthem", "canzone allegra"},
		Color:       "#22c55e",
	},
	"sad": {
		Name:        "Triste",
		Description: "Canzoni malinconiche e riflessive",
		KeywordsIT:  []string{"triste", "lacrime", "piangere", "dolore", "addio", "solitudine", "cuore spezzato"},
		KeywordsEN:  []string{"sad", "tears", "cry", "pain", "goodbye", "lonely", "heartbreak", "sorrow"},
		SearchTerms: []string{"sad song", "heartbreak", "canzone triste", "ballad"},
		Color:       "#6366f1",
	},
	"romantic": {
		Name:        "Romantico",
		Description: "Canzoni d'amore e romantiche",
		KeywordsIT:  []string{"amore", "cuore", "passione", "bacio", "insieme", "eternamente", "anima gemella"},
		KeywordsEN:  []string{"love", "heart", "passion", "kiss", "together", "forever", "soulmate", "romance"},
		SearchTerms: []string{"love song", "romantic", "canzone d'amore", "duet"},
		Color:       "#ec4899",
	},
	"energetic": {
		Name:        "Energico",
		Description: "Canzoni cariche di energia",
		KeywordsIT:  []string{"energia", "forza", "potenza", "correre", "vincere", "combattere", "fuoco"},
		KeywordsEN:  []string{"energy", "power", "strong", "run", "win", "fight", "fire", "unstoppable"},
		SearchTerms: []string{"workout music", "pump up", "energia", "motivational"},
		Color:       "#f59e0b",
	},
	"calm": {
		Name:        "Calmo",
		Description: "Canzoni rilassanti e tranquille",
		KeywordsIT:  []string{"calma", "pace", "silenzio", "notte", "sogno", "riposo", "sereno", "mare"},
		KeywordsEN:  []string{"calm", "peace", "quiet", "night", "dream", "rest", "serene", "ocean"},
		SearchTerms: []string{"relaxing music", "chill", "ambient", "peaceful"},
		Color:       "#06b6d4",
	},
	"angry": {
		Name:        "Arrabbiato",
		Description: "Canzoni intense e aggressive",
		KeywordsIT:  []string{"rabbia", "furia", "urlare", "distruggere", "odio", "vendetta", "rivoluzione"},
		KeywordsEN:  []string{"angry", "rage", "scream", "destroy", "hate", "revenge", "revolution", "fury"},
		SearchTerms: []string{"angry song", "metal", "rage", "intense"},
		Color:       "#ef4444",
	},
	"nostalgic": {
		Name:        "Nostalgico",
		Description: "Canzoni che evocano ricordi",
		KeywordsIT:  []string{"ricordi", "passato", "giovinezza", "tempo", "memoria", "ritorno", "ieri"},
		KeywordsEN:  []string{"memories", "past", "youth", "time", "remember", "return", "yesterday", "old times"},
		SearchTerms: []string{"nostalgic", "throwback", "retro", "memories"},
		Color:       "#8b5cf6",
	},
	"hopeful": {
		Name:        "Speranzoso",
		Description: "Canzoni di speranza e futuro",
		KeywordsIT:  []string{"speranza", "futuro", "domani", "sogno", "libertà", "volare", "nuovo inizio"},
		KeywordsEN:  []string{"hope", "future", "tomorrow", "dream", "freedom", "fly", "new beginning", "believe"},
		SearchTerms: []string{"hopeful song", "inspirational", "speranza", "uplifting"},
		Color:       "#10b981",
	},
	"rebellious": {
		Name:        "Ribelle",
		Description: "Canzoni di ribellione e anticonformismo",
		KeywordsIT:  []string{"ribelle", "libertà", "rivoluzione", "contro", "regole", "anarchia", "protesta"},
		KeywordsEN:  []string{"rebel", "freedom", "revolution", "against", "rules", "anarchy", "protest", "fight"},
		SearchTerms: []string{"rebel song", "protest", "punk", "revolution"},
		Color:       "#f97316",
	},
	"dreamy": {
		Name:        "Sognante",
		Description: "Canzoni oniriche e atmosferiche",
		KeywordsIT:  []string{"sogno", "nuvole", "stelle", "volare", "magia", "infinito", "fantasia"},
		KeywordsEN:  []string{"dream", "clouds", "stars", "fly", "magic", "infinite", "fantasy", "ethereal"},
		SearchTerms: []string{"dreamy", "atmospheric", "shoegaze", "ethereal"},
		Color:       "#a855f7",
	},
}
