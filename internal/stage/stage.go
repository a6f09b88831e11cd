package stage

import (
	"regexp"
	"strings"
)

// Stage is a coarse emotional-progress label derived from recent user text.
type Stage string

const (
	Confrontation Stage = "confrontation"
	Reflection    Stage = "reflection"
	Release       Stage = "release"
)

// Past this many user turns the keyword-less default shifts from
// confrontation to reflection.
const longTranscriptThreshold = 12

var (
	releasePattern       = regexp.MustCompile(`\b(thank you|i see|makes sense|i'm ready|goodbye|farewell)\b`)
	reflectionPattern    = regexp.MustCompile(`\b(maybe|i guess|i understand|i think|why did we)\b`)
	confrontationPattern = regexp.MustCompile(`\b(hate|never|always|you ruined|angry|mad|why did you)\b`)
)

// FromTranscript maps the ordered user utterances to a stage. Only the most
// recent utterance is pattern-matched, in fixed priority order: release, then
// reflection, then confrontation. Earlier turns only feed the length fallback.
// Pure function of its input; no state is kept between calls.
func FromTranscript(utterances []string) Stage {
	last := ""
	if len(utterances) > 0 {
		last = strings.ToLower(utterances[len(utterances)-1])
	}

	switch {
	case releasePattern.MatchString(last):
		return Release
	case reflectionPattern.MatchString(last):
		return Reflection
	case confrontationPattern.MatchString(last):
		return Confrontation
	}

	if len(utterances) > longTranscriptThreshold {
		return Reflection
	}
	return Confrontation
}
