// Package export renders processed transcript segments into the
// delivery formats placed inside a bag's payload directory.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/asr4memory/go-asr/internal/format"
	"github.com/asr4memory/go-asr/internal/segment"
)

// scorePlaceholder stands in for word confidence values that the
// aligner did not report.
const scorePlaceholder = "values approximately calculated"

// WriteVTT writes segments as WebVTT subtitle cues, numbered from 1.
func WriteVTT(w io.Writer, segs []segment.Segment) error {
	if _, err := io.WriteString(w, "WEBVTT\n\n"); err != nil {
		return fmt.Errorf("cannot write vtt: %w", err)
	}
	for i, seg := range segs {
		_, start := format.Timestamp(seg.Start)
		_, end := format.Timestamp(seg.End)
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, start, end, seg.Text); err != nil {
			return fmt.Errorf("cannot write vtt: %w", err)
		}
	}
	return nil
}

// WriteWordVTT writes word-level timings as WebVTT cues, one word per
// cue.
func WriteWordVTT(w io.Writer, words []segment.Word) error {
	if _, err := io.WriteString(w, "WEBVTT\n\n"); err != nil {
		return fmt.Errorf("cannot write vtt: %w", err)
	}
	for i, word := range words {
		_, start := format.Timestamp(word.Start)
		_, end := format.Timestamp(word.End)
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, start, end, word.Word); err != nil {
			return fmt.Errorf("cannot write vtt: %w", err)
		}
	}
	return nil
}

// WriteSRT writes segments as SRT subtitle cues, which differ from
// VTT only in the header and the comma millisecond separator.
func WriteSRT(w io.Writer, segs []segment.Segment) error {
	for i, seg := range segs {
		_, start := format.TimestampSep(seg.Start, ",")
		_, end := format.TimestampSep(seg.End, ",")
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, start, end, seg.Text); err != nil {
			return fmt.Errorf("cannot write srt: %w", err)
		}
	}
	return nil
}

// CSVOptions controls the segment CSV layout.
type CSVOptions struct {
	// Speaker adds a SPEAKER column between IN and TRANSCRIPT.
	Speaker bool
	// Header writes the column names as the first row.
	Header bool
}

// WriteCSV writes segments as tab-delimited rows with the start
// timecode in the first column and the text in the last.
func WriteCSV(w io.Writer, segs []segment.Segment, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.UseCRLF = true

	if opts.Header {
		header := []string{"IN", "SPEAKER", "TRANSCRIPT"}
		if !opts.Speaker {
			header = []string{"IN", "TRANSCRIPT"}
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("cannot write csv: %w", err)
		}
	}

	for _, seg := range segs {
		_, timecode := format.Timestamp(seg.Start)
		row := []string{timecode, seg.Speaker, seg.Text}
		if !opts.Speaker {
			row = []string{timecode, seg.Text}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}

// WriteWordCSV writes word-level timings as tab-delimited
// WORD/START/END/SCORE rows. Words without a confidence score get a
// placeholder value.
func WriteWordCSV(w io.Writer, words []segment.Word) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.UseCRLF = true

	if err := cw.Write([]string{"WORD", "START", "END", "SCORE"}); err != nil {
		return fmt.Errorf("cannot write word csv: %w", err)
	}

	for _, word := range words {
		_, start := format.Timestamp(word.Start)
		_, end := format.Timestamp(word.End)
		score := scorePlaceholder
		if word.Score != 0 {
			score = strconv.FormatFloat(word.Score, 'g', -1, 64)
		}
		if err := cw.Write([]string{word.Word, start, end, score}); err != nil {
			return fmt.Errorf("cannot write word csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write word csv: %w", err)
	}
	return nil
}

// WriteText writes only the text of each segment, one per line.
func WriteText(w io.Writer, segs []segment.Segment) error {
	for _, seg := range segs {
		if _, err := fmt.Fprintf(w, "%s\n", seg.Text); err != nil {
			return fmt.Errorf("cannot write text: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the processed document as indented JSON.
func WriteJSON(w io.Writer, doc segment.Document) error {
	data, err := segment.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write json: %w", err)
	}
	return nil
}
