package audio

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"go.uber.org/zap"
)

// Frame IDs written by KeyTagger.
const (
	// FrameKey is the ID3 "initial key" text frame.
	FrameKey = "TKEY"

	// CommentDescription identifies the comment written by KeyTagger.
	CommentDescription = "Scale"
)

// TagConfig holds tagging configuration.
//
// Example:
//
//	cfg := &TagConfig{
//	    Key:     true,  // Write TKEY
//	    Comment: false, // Leave comments untouched
//	}
type TagConfig struct {
	// Key controls the TKEY (Initial key) frame.
	Key bool

	// Comment controls the COMM (Comments) frame listing the scale tones.
	Comment bool
}

// DefaultTagConfig returns a configuration that writes both frames.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Key:     true,
		Comment: true,
	}
}

// KeyTagger writes the key and scale of a backing track into its ID3 tag.
//
// Example:
//
//	tagger := NewKeyTagger(DefaultTagConfig(), logger)
//
//	tones, _ := catalog.Generate("A", "minor-pentatonic")
//	preset, _ := catalog.Lookup("minor-pentatonic")
//	err := tagger.SaveKey("/tracks/jam.mp3", "A", preset, tones)
//	// TKEY = "Am"
//	// COMM = "Minor Pentatonic: A C D E G"
type KeyTagger struct {
	config *TagConfig
	logger *zap.Logger
}

// NewKeyTagger creates a new KeyTagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used. A nil logger discards
// log output.
func NewKeyTagger(config *TagConfig, logger *zap.Logger) *KeyTagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyTagger{config: config, logger: logger}
}

// SaveKey writes ID3 frames describing the scale to the MP3 at path.
//
// The file must already exist. Existing frames other than TKEY and the
// scale comment are preserved.
func (t *KeyTagger) SaveKey(path, root string, preset scale.Preset, tones []scale.Tone) error {
	rootSpelling, err := pitch.Parse(strings.TrimSpace(root))
	if err != nil {
		return err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	if t.config.Key {
		key := KeyString(rootSpelling, preset.Definition)
		tag.AddTextFrame(FrameKey, id3v2.EncodingUTF8, key)
		t.logger.Debug("tagging key", zap.String("path", path), zap.String("key", key))
	}

	if t.config.Comment {
		t.updateComment(tag, preset, tones)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// updateComment replaces the scale comment frame.
func (t *KeyTagger) updateComment(tag *id3v2.Tag, preset scale.Preset, tones []scale.Tone) {
	commentsID := tag.CommonID("Comments")

	var kept []id3v2.CommentFrame
	for _, f := range tag.GetFrames(commentsID) {
		cf, ok := f.(id3v2.CommentFrame)
		if ok && cf.Description != CommentDescription {
			kept = append(kept, cf)
		}
	}
	tag.DeleteFrames(commentsID)
	for _, cf := range kept {
		tag.AddCommentFrame(cf)
	}

	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: CommentDescription,
		Text:        Comment(preset, tones),
	})
}

// KeyString returns the ID3 initial key for a scale on root: the
// friendly ASCII root followed by "m" when the scale replaces its third
// with a minor third, e.g. "C", "F#m", "Bbm".
func KeyString(root pitch.Spelling, def scale.Definition) string {
	key := pitch.Format(pitch.Friendly(root.WithoutOctave()), false)
	if scale.HasMinorThird(def) {
		key += "m"
	}
	return key
}

// Comment returns "<name>: <tones>" with strict Unicode spellings.
func Comment(preset scale.Preset, tones []scale.Tone) string {
	return preset.Name + ": " + strings.Join(scale.FormatScale(tones, scale.Strict, true), " ")
}
