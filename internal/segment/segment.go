// Package segment defines the transcript data model shared by the
// post-processing pipeline and the export writers.
package segment

import (
	"fmt"

	"github.com/asr4memory/go-asr/internal/format"
)

// Word is a single word with its timing inside a segment.
// A word belongs to exactly one segment at a time.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Score float64 `json:"score,omitempty"`
}

// Segment is a timed span of transcript text, the basic unit of both
// raw ASR output and post-processed output. Speaker and Words are
// optional; Speaker is only set when diarization ran.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
	Words   []Word  `json:"words,omitempty"`
}

// Duration returns the length of this segment in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// String returns a human-readable representation for logging.
func (s Segment) String() string {
	start, _ := format.Timestamp(s.Start)
	end, _ := format.Timestamp(s.End)
	return fmt.Sprintf("segment %s-%s: %q", start, end, s.Text)
}

// Document is the on-disk shape of a transcription result: the
// segment list plus the flattened word-level timings.
type Document struct {
	Segments     []Segment `json:"segments"`
	WordSegments []Word    `json:"word_segments,omitempty"`
}

// Validate checks the sequence invariant: segments are chronologically
// ordered and non-overlapping, and each segment ends after it starts.
func Validate(segs []Segment) error {
	for i, seg := range segs {
		if seg.Start < 0 {
			return fmt.Errorf("segment %d: negative start %v: %w", i, seg.Start, ErrInvalidSequence)
		}
		if seg.End <= seg.Start {
			return fmt.Errorf("segment %d: end %v not after start %v: %w",
				i, seg.End, seg.Start, ErrInvalidSequence)
		}
		if i > 0 && seg.Start < segs[i-1].End {
			return fmt.Errorf("segment %d: overlaps previous (start %v < end %v): %w",
				i, seg.Start, segs[i-1].End, ErrInvalidSequence)
		}
	}
	return nil
}
