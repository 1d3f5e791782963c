package postprocess_test

import (
	"reflect"
	"testing"

	"github.com/asr4memory/go-asr/internal/postprocess"
	"github.com/asr4memory/go-asr/internal/segment"
)

func TestBufferSentences(t *testing.T) {
	t.Parallel()

	t.Run("merges title-split sentence", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 2, Text: "Sorry, I'm not a Dr."},
			{Start: 2, End: 4, Text: "I'm actually a teacher."},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{})

		if len(got) != 1 {
			t.Fatalf("got %d segments, want 1", len(got))
		}
		want := "Sorry, I'm not a Dr. I'm actually a teacher."
		if got[0].Text != want {
			t.Errorf("merged text = %q, want %q", got[0].Text, want)
		}
		if got[0].Start != 0 || got[0].End != 4 {
			t.Errorf("merged span = [%v, %v], want [0, 4]", got[0].Start, got[0].End)
		}
	})

	t.Run("concatenates word lists in order", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Er sprach mit Dr.",
				Words: []segment.Word{
					{Word: "Er", Start: 0, End: 0.2},
					{Word: "sprach", Start: 0.2, End: 0.5},
					{Word: "mit", Start: 0.5, End: 0.7},
					{Word: "Dr.", Start: 0.7, End: 1},
				}},
			{Start: 1, End: 2, Text: "Meier über das Projekt.",
				Words: []segment.Word{
					{Word: "Meier", Start: 1, End: 1.3},
					{Word: "über", Start: 1.3, End: 1.5},
					{Word: "das", Start: 1.5, End: 1.7},
					{Word: "Projekt.", Start: 1.7, End: 2},
				}},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{})

		if len(got) != 1 {
			t.Fatalf("got %d segments, want 1", len(got))
		}
		if len(got[0].Words) != 8 {
			t.Fatalf("got %d words, want 8", len(got[0].Words))
		}
		if got[0].Words[0].Word != "Er" || got[0].Words[7].Word != "Projekt." {
			t.Errorf("word order lost: %v ... %v", got[0].Words[0].Word, got[0].Words[7].Word)
		}
	})

	t.Run("complete sentences pass through", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "  First sentence.  "},
			{Start: 1, End: 2, Text: "Second sentence."},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{})

		if len(got) != 2 {
			t.Fatalf("got %d segments, want 2", len(got))
		}
		if got[0].Text != "First sentence." {
			t.Errorf("text should be trimmed, got %q", got[0].Text)
		}
		if got[0].Start != 0 || got[0].End != 1 || got[1].Start != 1 || got[1].End != 2 {
			t.Error("pass-through segments must keep their timing")
		}
	})

	t.Run("flushes trailing buffer trimmed", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Dieser Satz hört einfach"},
			{Start: 1, End: 2, Text: "mitten im Gedanken auf und"},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{})

		if len(got) != 1 {
			t.Fatalf("got %d segments, want 1", len(got))
		}
		want := "Dieser Satz hört einfach mitten im Gedanken auf und"
		if got[0].Text != want {
			t.Errorf("flushed text = %q, want %q", got[0].Text, want)
		}
		if got[0].Start != 0 || got[0].End != 2 {
			t.Errorf("flushed span = [%v, %v], want [0, 2]", got[0].Start, got[0].End)
		}
	})

	t.Run("buffer opener's speaker wins", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Ich denke, dass wir", Speaker: "SPEAKER_00"},
			{Start: 1, End: 2, Text: "morgen anfangen sollten.", Speaker: "SPEAKER_01"},
		}

		got := postprocess.BufferSentences(segs,
			postprocess.Options{UseSpeakerDiarization: true})

		if len(got) != 1 {
			t.Fatalf("got %d segments, want 1", len(got))
		}
		if got[0].Speaker != "SPEAKER_00" {
			t.Errorf("speaker = %q, want opener's SPEAKER_00", got[0].Speaker)
		}
	})

	t.Run("untagged segment gets default speaker", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Ein vollständiger Satz."},
		}

		got := postprocess.BufferSentences(segs,
			postprocess.Options{UseSpeakerDiarization: true})

		if got[0].Speaker != postprocess.DefaultSpeaker {
			t.Errorf("speaker = %q, want %q", got[0].Speaker, postprocess.DefaultSpeaker)
		}
	})

	t.Run("speaker dropped when diarization disabled", func(t *testing.T) {
		t.Parallel()

		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Ein vollständiger Satz.", Speaker: "SPEAKER_03"},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{})

		if got[0].Speaker != "" {
			t.Errorf("speaker = %q, want empty", got[0].Speaker)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		got := postprocess.BufferSentences(nil, postprocess.Options{})
		if len(got) != 0 {
			t.Errorf("got %d segments, want 0", len(got))
		}
	})

	t.Run("custom classifier is honored", func(t *testing.T) {
		t.Parallel()

		c := postprocess.NewClassifier(postprocess.WithTitles("Mgr"))
		segs := []segment.Segment{
			{Start: 0, End: 1, Text: "Wir trafen Mgr."},
			{Start: 1, End: 2, Text: "Novak gestern."},
		}

		got := postprocess.BufferSentences(segs, postprocess.Options{Classifier: c})

		want := []segment.Segment{
			{Start: 0, End: 2, Text: "Wir trafen Mgr. Novak gestern."},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}
