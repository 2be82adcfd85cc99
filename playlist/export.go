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

package playlist

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Format selects a playlist serialization.
type Format int

const (
	// JSON writes the playlist as indented JSON.
	JSON Format = iota

	// M3U writes an extended M3U file with one #EXTINF per track.
	M3U

	// HTML writes a standalone web page listing the tracks.
	HTML
)

// String returns the format's file extension.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case M3U:
		return "m3u"
	case HTML:
		return "html"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "m3u":
		return M3U, nil
	case "html":
		return HTML, nil
	default:
		return JSON, fmt.Errorf("unknown playlist format %q", s)
	}
}

// Write serializes the playlist to w in the given format.
func (p *Playlist) Write(w io.Writer, format Format) error {
	switch format {
	case JSON:
		return p.writeJSON(w)
	case M3U:
		return p.writeM3U(w)
	case HTML:
		return p.writeHTML(w)
	default:
		return fmt.Errorf("unknown playlist format %d", int(format))
	}
}

func (p *Playlist) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(p)
}

func (p *Playlist) writeM3U(w io.Writer) error {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	fmt.Fprintf(&b, "#PLAYLIST:%s\n", p.Name)

	for _, track := range p.Tracks {
		// Duration unknown, hence -1.
		fmt.Fprintf(&b, "#EXTINF:-1,%s - %s\n", track.Artist, track.Title)
		if track.YouTubeURL != "" {
			b.WriteString(track.YouTubeURL)
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "# %s - %s\n", track.Artist, track.Title)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var htmlTemplate = template.Must(template.New("playlist").Funcs(template.FuncMap{
	"percent": func(score float64) string {
		return fmt.Sprintf("%.1f%%", score*100)
	},
	"badgeColor": func(score float64) string {
		switch {
		case score >= 0.7:
			return "#22c55e"
		case score >= 0.5:
			return "#eab308"
		default:
			return "#f97316"
		}
	},
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #16213e; color: #e2e8f0; padding: 2rem; }
.container { max-width: 1100px; margin: 0 auto; }
h1 { font-size: 2.2rem; margin-bottom: 0.5rem; }
.meta { color: #94a3b8; margin-bottom: 2rem; }
table { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.05); }
th, td { padding: 0.8rem; text-align: left; }
th { background: rgba(255,255,255,0.1); }
.score { display: inline-block; padding: 3px 10px; border-radius: 16px; font-weight: bold; color: white; }
a.btn { background: #ef4444; color: white; padding: 5px 10px; border-radius: 6px; text-decoration: none; font-size: 13px; }
</style>
</head>
<body>
<div class="container">
<h1>{{.Name}}</h1>
<p class="meta">{{.Description}}<br>{{len .Tracks}} brani &bull; {{.CreatedAt.Format "2006-01-02"}}</p>
<table>
<tr><th>#</th><th>Titolo</th><th>Artista</th><th>Rilevanza</th><th></th></tr>
{{range $i, $t := .Tracks}}<tr>
<td>{{inc $i}}</td>
<td><strong>{{$t.Title}}</strong></td>
<td>{{$t.Artist}}</td>
<td><span class="score" style="background:{{badgeColor $t.RelevanceScore}}">{{percent $t.RelevanceScore}}</span></td>
<td>{{if $t.YouTubeURL}}<a class="btn" href="{{$t.YouTubeURL}}" target="_blank">YouTube</a>{{end}}</td>
</tr>
{{end}}</table>
</div>
</body>
</html>
`))

func (p *Playlist) writeHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, p)
}
