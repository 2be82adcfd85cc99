package verse

import "regexp"

// sectionPatterns maps bracketed header forms, in both languages, to a
// section label. Order matters: the first matching pattern wins.
var sectionPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)^\[(?:verse|strofa)\s*\d*\]`), "Verse"},
	{regexp.MustCompile(`(?i)^\[(?:chorus|ritornello|rit\.?)\]`), "Chorus"},
	{regexp.MustCompile(`(?i)^\[(?:pre-chorus|pre-ritornello)\]`), "Pre-Chorus"},
	{regexp.MustCompile(`(?i)^\[(?:bridge|ponte)\]`), "Bridge"},
	{regexp.MustCompile(`(?i)^\[(?:outro|finale)\]`), "Outro"},
	{regexp.MustCompile(`(?i)^\[(?:intro)\]`), "Intro"},
	{regexp.MustCompile(`(?i)^\[(?:hook)\]`), "Hook"},
}

// detectSection returns the section label if the line is a section header,
// or "" for a content line.
func detectSection(line string) string {
	for _, p := range sectionPatterns {
		if p.re.MatchString(line) {
			return p.label
		}
	}
	return ""
}
