// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis voicebank sample decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Vorbis is a free, open-source lossy audio compression format,
// common in voicebanks that trade fidelity for size.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Mono and stereo
//   - Various sample rates
//
// # Decoding Vorbis Files
//
// Use the Decoder to load samples:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("a.ogg")
//	smp, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// smp.Data holds interleaved float32 in [-1.0, 1.0]
//
// The Decoder satisfies sample.Decoder, so it can be registered for the
// ".ogg" extension in a sample.Registry.
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// To convert to mono:
//
//	smp, _ := decoder.Decode(file)
//	mono := smp.Mono()
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
package vorbis
