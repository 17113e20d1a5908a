// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 voicebank sample decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoding is whole-file: voicebank samples are small and resampling
// engines index into them freely.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Stereo output (go-mp3 always decodes to two channels)
//
// # Decoding MP3 Files
//
// Use the Decoder to load samples:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("a.mp3")
//	smp, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// smp.Data holds interleaved float32 in [-1.0, 1.0]
//
// The Decoder satisfies sample.Decoder, so it can be registered for the
// ".mp3" extension in a sample.Registry.
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (always, per go-mp3)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// Voicebank lookups usually want mono; use Sample.Mono to downmix:
//
//	smp, _ := decoder.Decode(file)
//	mono := smp.Mono()
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use Sample.Mono to convert)
package mp3
