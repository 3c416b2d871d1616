// Package audio writes musical key metadata into audio files.
//
// # Key Tagging
//
// Use the KeyTagger to record which scale a backing track is in:
//
//	tagger := audio.NewKeyTagger(audio.DefaultTagConfig(), logger)
//	err := tagger.SaveKey("jam.mp3", "A", preset, tones)
//
// The tagger writes:
//   - TKEY, the ID3 initial key (e.g. "Am", at most three characters)
//   - A COMM frame described as "Scale" listing the strict spellings
package audio
