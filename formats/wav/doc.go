// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV sample decoding and render output encoding.
//
// This package uses the github.com/go-audio libraries for WAV file handling.
// Decoding loads whole voicebank samples into memory; encoding writes
// rendered or streamed audio as 16-bit PCM.
//
// # Supported Formats
//
// Decoding supports:
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// Encoding always produces PCM 16-bit.
//
// # Decoding WAV Files
//
// Use the Decoder to load samples:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("a.wav")
//	smp, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// smp.Data holds interleaved float32 in [-1.0, 1.0]
//	fmt.Println(smp.Rate, smp.Channels, smp.Frames())
//
// The Decoder satisfies sample.Decoder, so it can be registered for the
// ".wav" extension in a sample.Registry.
//
// # Writing WAV Files
//
// EncodeSamples writes a rendered buffer in one call:
//
//	pcm, rate, channels, _ := ucra.RenderScore(nil, cfg, notes)
//	file, _ := os.Create("out.wav")
//	err := wav.EncodeSamples(file, rate, channels, pcm)
//
// Encode drains any Source, a streaming session included, until io.EOF:
//
//	session, _ := stream.Open(cfg, pull, nil)
//	err := wav.Encode(file, session)
//
// Both need an io.WriteSeeker because the RIFF sizes are patched at the
// end. WriteWAV16 is the seekless alternative for pipes; it takes int16
// PCM and the sample count up front.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: Compressed or float WAV data
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// Example:
//
//	smp, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
