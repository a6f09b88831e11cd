package stage

import "testing"

func TestFromTranscriptClosingLanguageWinsPriority(t *testing.T) {
	// Contains both closing and reflective phrasing; closing is checked first.
	got := FromTranscript([]string{"thank you, I think I finally understand"})
	if got != Release {
		t.Fatalf("expected release, got %s", got)
	}
}

func TestFromTranscriptAngerLanguage(t *testing.T) {
	got := FromTranscript([]string{"you always ruined everything"})
	if got != Confrontation {
		t.Fatalf("expected confrontation, got %s", got)
	}
}

func TestFromTranscriptReflectiveLanguage(t *testing.T) {
	got := FromTranscript([]string{"maybe it was both of us"})
	if got != Reflection {
		t.Fatalf("expected reflection, got %s", got)
	}
}

func TestFromTranscriptCaseInsensitive(t *testing.T) {
	got := FromTranscript([]string{"GOODBYE"})
	if got != Release {
		t.Fatalf("expected release for upper-case input, got %s", got)
	}
}

func TestFromTranscriptOnlyLastUtteranceMatches(t *testing.T) {
	got := FromTranscript([]string{"goodbye", "it just ended one day"})
	if got != Confrontation {
		t.Fatalf("expected earlier turns to be ignored for matching, got %s", got)
	}
}

func TestFromTranscriptLongHistoryDefaultsToReflection(t *testing.T) {
	utterances := make([]string, 20)
	for i := range utterances {
		utterances[i] = "it just ended one day"
	}
	got := FromTranscript(utterances)
	if got != Reflection {
		t.Fatalf("expected reflection for long keyword-less history, got %s", got)
	}
}

func TestFromTranscriptShortHistoryDefaultsToConfrontation(t *testing.T) {
	got := FromTranscript([]string{"it just ended one day"})
	if got != Confrontation {
		t.Fatalf("expected confrontation for short keyword-less history, got %s", got)
	}
}

func TestFromTranscriptEmptyInput(t *testing.T) {
	if got := FromTranscript(nil); got != Confrontation {
		t.Fatalf("expected confrontation for empty transcript, got %s", got)
	}
}

func TestFromTranscriptIsDeterministic(t *testing.T) {
	utterances := []string{"why did you leave", "i guess it was over long before"}
	first := FromTranscript(utterances)
	for i := 0; i < 5; i++ {
		if got := FromTranscript(utterances); got != first {
			t.Fatalf("expected identical input to yield identical stage, got %s then %s", first, got)
		}
	}
}
