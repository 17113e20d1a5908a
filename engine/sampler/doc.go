// SPDX-License-Identifier: EPL-2.0

// Package sampler provides a voicebank playback engine.
//
// Where the additive engine synthesizes sines from nothing, the sampler
// replays recorded voice samples: each note picks the sample registered
// for its lyric and steps through it at a pitch-dependent rate, Catmull-Rom
// interpolated. This is the UTAU-style resampling model the rest of the
// toolkit (manifests, flag mapping) is built around.
//
// # Banks
//
// A Bank maps lyrics to samples. Load one from a voicebank directory:
//
//	codecs := sample.NewRegistry()
//	codecs.Register(".wav", wav.Decoder{})
//	codecs.Register(".ogg", vorbis.Decoder{})
//
//	bank, err := sampler.LoadBank("voicebank/", codecs)
//
// or build one programmatically with NewBank and Add. Samples are downmixed
// to mono on insertion. Unknown lyrics fall back to the first sample in sort
// order, so sparse banks still render every note.
//
// # Rendering
//
// New(bank, opts) returns an engine.Engine:
//
//	eng, err := sampler.New(bank, map[string]string{"base_note": "60"})
//	pcm, err := eng.Render(notes, 44100, 2, 512)
//
// The playback ratio per note is
//
//	MIDIToHz(note.Pitch) / MIDIToHz(base_note) * bankRate / sessionRate
//
// so a note an octave above the recording pitch plays the sample twice as
// fast. Samples loop for notes longer than the recording. Per-voice
// playheads persist across Render calls, which keeps playback seamless when
// a streaming session renders block by block.
//
// # Registry Integration
//
// Factory adapts a bank to the engine registry:
//
//	reg := engine.NewRegistry()
//	reg.Register("sampler", sampler.Factory(bank))
//	eng, err := reg.New("sampler", map[string]string{"gain": "0.8"})
package sampler
