// SPDX-License-Identifier: EPL-2.0

// Package sample models decoded voice recordings and the decoders that load
// them.
//
// A Sample keeps a whole recording in memory as normalized interleaved
// float32 PCM. Format packages under formats/ implement the Decoder
// interface and can be wired into a Registry so voicebank loaders pick the
// right decoder from a file's extension:
//
//	registry := sample.NewRegistry()
//	registry.Register(".wav", wav.Decoder{})
//	registry.Register(".mp3", mp3.Decoder{})
//
//	decoder, ok := registry.Get(".wav")
//	if ok {
//	    s, err := decoder.Decode(file)
//	    // s.Data, s.Rate, s.Channels
//	}
//
// Mono() collapses multi-channel recordings for pitch-shifting engines that
// process a single channel.
package sample
