// SPDX-License-Identifier: EPL-2.0

// Package audio provides conditioning stages between a synthesis stream and
// its consumer.
//
// A streaming session delivers PCM at the engine's native format, but the
// consumer (a playback device, a host application, a file encoder) often
// wants a different one. The stages in this package wrap any
// Source and re-expose it converted, so they chain freely:
//
//	session, _ := stream.Open(cfg, nil, pull)
//
//	// 48 kHz mono for the device, whatever the engine renders at.
//	src := audio.NewMonoMixer(audio.NewResampler(session, 48000))
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// # The Source Interface
//
// Source is the shape every stage consumes and produces. stream.Session
// satisfies it, as does each wrapper here, so a pipeline is just nested
// constructors. Closing the outermost stage closes the whole chain.
//
// # Endless Streams
//
// Sessions produce audio for as long as they are read; only Close ends the
// stream. Collectors that drain to io.EOF therefore need a FrameLimiter in
// front of a session:
//
//	limited := audio.NewFrameLimiter(session, 44100) // exactly one second
//
// Decoded samples and other finite sources need no limiter.
package audio
