package postprocess

import (
	"strings"

	"github.com/asr4memory/go-asr/internal/segment"
)

// DefaultSpeaker is used when diarization is enabled but a segment
// carries no speaker tag.
const DefaultSpeaker = "SPEAKER_XX"

// BufferSentences merges runs of incomplete fragments into single
// logical sentences.
//
// Incomplete fragments accumulate with a trailing space; the fragment
// that completes the sentence is appended without a separator. The
// merged segment spans from the first fragment's start to the last
// fragment's end, with the word lists concatenated in order. A
// trailing buffer with no completing fragment is emitted trimmed.
//
// When diarization is enabled the merged segment keeps the speaker of
// the fragment that opened the buffer: that speaker started the
// sentence.
func BufferSentences(segs []segment.Segment, opts Options) []segment.Segment {
	c := opts.classifier()
	out := make([]segment.Segment, 0, len(segs))

	var (
		buffering bool
		buffer    string
		words     []segment.Word
		start     float64
		end       float64
		speaker   string
	)

	for _, seg := range segs {
		sentence := strings.TrimSpace(seg.Text)

		segSpeaker := ""
		if opts.UseSpeakerDiarization {
			segSpeaker = seg.Speaker
			if segSpeaker == "" {
				segSpeaker = DefaultSpeaker
			}
		}

		if c.IsIncomplete(sentence) {
			if !buffering {
				buffering = true
				start = seg.Start
				speaker = segSpeaker
			}
			buffer += sentence + " "
			words = append(words, seg.Words...)
			end = seg.End
			continue
		}

		if buffering {
			// This fragment completes the buffered sentence.
			buffer += sentence
			words = append(words, seg.Words...)
			end = seg.End

			merged := segment.Segment{
				Start: start,
				End:   end,
				Text:  buffer,
				Words: words,
			}
			if opts.UseSpeakerDiarization {
				merged.Speaker = speaker
			}
			out = append(out, merged)

			buffering = false
			buffer = ""
			words = nil
			continue
		}

		// Standalone complete sentence: pass through.
		standalone := segment.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  sentence,
			Words: seg.Words,
		}
		if opts.UseSpeakerDiarization {
			standalone.Speaker = segSpeaker
		}
		out = append(out, standalone)
	}

	// Trailing incomplete fragment with no following segment.
	if buffering {
		merged := segment.Segment{
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(buffer),
			Words: words,
		}
		if opts.UseSpeakerDiarization {
			merged.Speaker = speaker
		}
		out = append(out, merged)
	}

	return out
}
