package postprocess

import "github.com/asr4memory/go-asr/internal/segment"

// DefaultMaxSentenceLength is the character budget above which
// sentences are split.
const DefaultMaxSentenceLength = 120

// Options configures the post-processing pipeline. The zero value
// uses the default sentence length budget, no diarization, and the
// default classifier.
type Options struct {
	// MaxSentenceLength is the character budget for SplitLongSentences.
	// Zero or negative means DefaultMaxSentenceLength.
	MaxSentenceLength int

	// UseSpeakerDiarization carries speaker tags through the pipeline
	// and substitutes DefaultSpeaker for untagged segments.
	UseSpeakerDiarization bool

	// Classifier overrides the sentence boundary classifier.
	// Nil means NewClassifier() with the default lexicon.
	Classifier *Classifier
}

func (o Options) maxSentenceLength() int {
	if o.MaxSentenceLength > 0 {
		return o.MaxSentenceLength
	}
	return DefaultMaxSentenceLength
}

func (o Options) classifier() *Classifier {
	if o.Classifier != nil {
		return o.Classifier
	}
	return defaultClassifier
}

var defaultClassifier = NewClassifier()

// Result is the output of Process: the corrected segment sequence and
// the word-level timings flattened from all segments in final order.
type Result struct {
	Segments     []segment.Segment
	WordSegments []segment.Word
}

// Process runs the full post-processing pipeline: merge falsely split
// sentences, normalize capitalization, then split over-long sentences.
// Merging always runs before splitting because splitting must operate
// on whole logical sentences. An empty input yields an empty result.
func Process(segs []segment.Segment, opts Options) Result {
	merged := BufferSentences(segs, opts)
	UppercaseSentences(merged)
	split := SplitLongSentences(merged, opts)

	var words []segment.Word
	for _, seg := range split {
		words = append(words, seg.Words...)
	}

	return Result{Segments: split, WordSegments: words}
}
