package bagit_test

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/asr4memory/go-asr/internal/bagit"
)

// sealTestBag prepares a bag with two transcript payload files and
// seals it with a fixed clock. Returns the bag root and the payload
// contents keyed by manifest-relative path.
func sealTestBag(t *testing.T, extra *bagit.Info) (string, map[string]string) {
	t.Helper()

	bagRoot := filepath.Join(t.TempDir(), "interview-bag")
	transcripts, err := bagit.Prepare(bagRoot, bagit.PrepareOptions{})
	if err != nil {
		t.Fatalf("preparing bag: %v", err)
	}

	payload := map[string]string{
		"data/transcripts/interview.vtt": "WEBVTT\n\n00:00:00.000 --> 00:00:02.500\nHello.\n",
		"data/transcripts/interview.csv": "IN\tSPEAKER\tTRANSCRIPT\n00:00:00.000\tSPEAKER_00\tHello.\n",
	}

	var paths []string
	for rel, content := range payload {
		path := filepath.Join(transcripts, filepath.Base(rel))
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing payload: %v", err)
		}
		paths = append(paths, path)
	}

	clock := func() time.Time {
		return time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
	}
	if err := bagit.Finalize(bagRoot, paths, extra, bagit.WithClock(clock)); err != nil {
		t.Fatalf("finalizing bag: %v", err)
	}

	return bagRoot, payload
}

func readBagFile(t *testing.T, bagRoot, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(bagRoot, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// parseTagFile splits "Key: Value" lines preserving order.
func parseTagFile(t *testing.T, content string) []bagit.Field {
	t.Helper()
	var fields []bagit.Field
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			t.Fatalf("malformed tag line %q", line)
		}
		fields = append(fields, bagit.Field{Key: key, Value: value})
	}
	return fields
}

func TestFinalize(t *testing.T) {
	t.Parallel()

	extra := bagit.BuildInfo(bagit.BuildInfoParams{
		SourceFilename:     "interview.wav",
		Model:              "large-v3",
		Language:           "de",
		AudioLengthSeconds: 2.5,
	})
	bagRoot, payload := sealTestBag(t, extra)

	t.Run("declaration", func(t *testing.T) {
		got := readBagFile(t, bagRoot, "bagit.txt")
		want := "BagIt-Version: 1.0\nTag-File-Character-Encoding: UTF-8\n"
		if got != want {
			t.Errorf("bagit.txt = %q, want %q", got, want)
		}
	})

	t.Run("payload manifest", func(t *testing.T) {
		var want strings.Builder
		// Sorted by relative path: .csv before .vtt.
		for _, rel := range []string{
			"data/transcripts/interview.csv",
			"data/transcripts/interview.vtt",
		} {
			sum := sha512.Sum512([]byte(payload[rel]))
			fmt.Fprintf(&want, "%s  %s\n", hex.EncodeToString(sum[:]), rel)
		}

		got := readBagFile(t, bagRoot, "manifest-sha512.txt")
		if got != want.String() {
			t.Errorf("manifest-sha512.txt:\n got: %q\nwant: %q", got, want.String())
		}
	})

	t.Run("bag info", func(t *testing.T) {
		fields := parseTagFile(t, readBagFile(t, bagRoot, "bag-info.txt"))

		var totalBytes int
		for _, content := range payload {
			totalBytes += len(content)
		}

		wantOrder := []string{
			"Bagging-Date", "Payload-Oxum",
			"Source-Filename", "Model", "Language", "Audio-Length-Seconds",
			"Bag-Description", "Bag-Size",
		}
		if len(fields) != len(wantOrder) {
			t.Fatalf("bag-info.txt has %d fields, want %d: %v", len(fields), len(wantOrder), fields)
		}
		for i, key := range wantOrder {
			if fields[i].Key != key {
				t.Errorf("field %d = %s, want %s", i, fields[i].Key, key)
			}
		}

		byKey := map[string]string{}
		for _, f := range fields {
			byKey[f.Key] = f.Value
		}
		if got := byKey["Bagging-Date"]; got != "2026-05-01" {
			t.Errorf("Bagging-Date = %q", got)
		}
		if want := fmt.Sprintf("%d.%d", totalBytes, len(payload)); byKey["Payload-Oxum"] != want {
			t.Errorf("Payload-Oxum = %q, want %q", byKey["Payload-Oxum"], want)
		}
		if byKey["Bag-Description"] != bagit.DefaultBagDescription {
			t.Errorf("Bag-Description = %q", byKey["Bag-Description"])
		}

		// Bag-Size covers payload plus every tag file on disk.
		var diskBytes int64
		for _, name := range []string{
			"bagit.txt", "bag-info.txt", "manifest-sha512.txt", "tagmanifest-sha512.txt",
		} {
			fi, err := os.Stat(filepath.Join(bagRoot, name))
			if err != nil {
				t.Fatalf("stat %s: %v", name, err)
			}
			diskBytes += fi.Size()
		}
		diskBytes += int64(totalBytes)
		if want := bagit.FormatSize(diskBytes); byKey["Bag-Size"] != want {
			t.Errorf("Bag-Size = %q, want %q", byKey["Bag-Size"], want)
		}
	})

	t.Run("tag manifest", func(t *testing.T) {
		got := readBagFile(t, bagRoot, "tagmanifest-sha512.txt")

		var want strings.Builder
		for _, name := range []string{"bag-info.txt", "bagit.txt", "manifest-sha512.txt"} {
			sum := sha512.Sum512([]byte(readBagFile(t, bagRoot, name)))
			fmt.Fprintf(&want, "%s  %s\n", hex.EncodeToString(sum[:]), name)
		}
		if got != want.String() {
			t.Errorf("tagmanifest-sha512.txt:\n got: %q\nwant: %q", got, want.String())
		}

		// It must list neither itself nor payload files.
		if strings.Contains(got, "tagmanifest") || strings.Contains(got, "data/") {
			t.Errorf("tagmanifest lists forbidden entries: %q", got)
		}
	})
}

func TestFinalizeCallerMetadataWins(t *testing.T) {
	t.Parallel()

	extra := &bagit.Info{}
	extra.Set("Bag-Description", "Custom description.")
	extra.Set("Bagging-Date", "2019-12-31")

	bagRoot, _ := sealTestBag(t, extra)

	fields := parseTagFile(t, readBagFile(t, bagRoot, "bag-info.txt"))
	byKey := map[string]string{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}

	if byKey["Bag-Description"] != "Custom description." {
		t.Errorf("Bag-Description = %q, caller value should win", byKey["Bag-Description"])
	}
	if byKey["Bagging-Date"] != "2019-12-31" {
		t.Errorf("Bagging-Date = %q, caller value should win", byKey["Bagging-Date"])
	}
}

func TestFinalizeEmptyPayload(t *testing.T) {
	t.Parallel()

	bagRoot := filepath.Join(t.TempDir(), "empty-bag")
	if _, err := bagit.Prepare(bagRoot, bagit.PrepareOptions{}); err != nil {
		t.Fatalf("preparing bag: %v", err)
	}

	if err := bagit.Finalize(bagRoot, nil, nil); err != nil {
		t.Fatalf("finalizing empty bag: %v", err)
	}

	if got := readBagFile(t, bagRoot, "manifest-sha512.txt"); got != "" {
		t.Errorf("manifest should be empty, got %q", got)
	}

	fields := parseTagFile(t, readBagFile(t, bagRoot, "bag-info.txt"))
	byKey := map[string]string{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	if byKey["Payload-Oxum"] != "0.0" {
		t.Errorf("Payload-Oxum = %q, want 0.0", byKey["Payload-Oxum"])
	}
}
