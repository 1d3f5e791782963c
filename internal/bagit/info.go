package bagit

import "fmt"

// Field is a single bag-info entry.
type Field struct {
	Key   string
	Value string
}

// Info is an insertion-ordered string metadata mapping for
// bag-info.txt. Order is preserved on write, not sorted, because
// some keys (notably Bag-Size) are computed and appended last.
type Info struct {
	fields []Field
}

// Set stores key=value. An existing key is overwritten in place,
// keeping its position; a new key is appended.
func (i *Info) Set(key, value string) {
	for n := range i.fields {
		if i.fields[n].Key == key {
			i.fields[n].Value = value
			return
		}
	}
	i.fields = append(i.fields, Field{Key: key, Value: value})
}

// SetDefault appends key=value only if key is not present.
func (i *Info) SetDefault(key, value string) {
	if _, ok := i.Get(key); !ok {
		i.fields = append(i.fields, Field{Key: key, Value: value})
	}
}

// Get returns the value for key and whether it is present.
func (i *Info) Get(key string) (string, bool) {
	for _, f := range i.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Del removes key if present.
func (i *Info) Del(key string) {
	for n := range i.fields {
		if i.fields[n].Key == key {
			i.fields = append(i.fields[:n], i.fields[n+1:]...)
			return
		}
	}
}

// Fields returns the entries in insertion order.
func (i *Info) Fields() []Field {
	return i.fields
}

// DefaultBagDescription documents the bag layout for consumers that
// only see the sealed directory.
const DefaultBagDescription = "The bag contains multiple transcript formats and derivatives " +
	"for varied use scenarios in the /data directory: " +
	"The /llm_output directory contains LLM-generated content such as summaries and table of contents. " +
	"The /ohd_import directory contains the transcript for import into Oral-History.Digital. " +
	"The /transcripts directory contains all transcripts in the original language, " +
	"while /translations contains translated variants. " +
	"More information can be found in the /documentation directory. Further details: " +
	"https://www.fu-berlin.de/asr4memory"

// BuildInfoParams carries the caller-supplied bag metadata.
type BuildInfoParams struct {
	SourceFilename     string
	Model              string
	Language           string
	AudioLengthSeconds float64

	// Translation metadata, only written when TranslationEnabled.
	TranslationEnabled bool
	SourceLanguage     string
	TargetLanguage     string

	// Institutional identity, each written only when non-empty.
	GroupIdentifier           string
	BagCount                  string
	InternalSenderIdentifier  string
	InternalSenderDescription string
}

// BuildInfo assembles the caller side of the bag-info metadata.
// Computed fields (Bagging-Date, Payload-Oxum, Bag-Size) are added by
// Finalize.
func BuildInfo(p BuildInfoParams) *Info {
	info := &Info{}
	info.Set("Source-Filename", p.SourceFilename)
	info.Set("Model", p.Model)
	info.Set("Language", p.Language)
	info.Set("Audio-Length-Seconds", fmt.Sprintf("%.2f", p.AudioLengthSeconds))

	if p.TranslationEnabled {
		info.Set("Source-Language", p.SourceLanguage)
		info.Set("Target-Language", p.TargetLanguage)
	}

	if p.GroupIdentifier != "" {
		info.Set("Bag-Group-Identifier", p.GroupIdentifier)
	}
	if p.BagCount != "" {
		info.Set("Bag-Count", p.BagCount)
	}
	if p.InternalSenderIdentifier != "" {
		info.Set("Internal-Sender-Identifier", p.InternalSenderIdentifier)
	}
	if p.InternalSenderDescription != "" {
		info.Set("Internal-Sender-Description", p.InternalSenderDescription)
	}

	return info
}
