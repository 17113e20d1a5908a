// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/crlotwhite/ucra-go/formats/wav"
)

// Example_decoding demonstrates loading a WAV sample.
func Example_decoding() {
	// Create a sample WAV file
	samples := []int16{100, 200, 300, 400, 500}
	wavData := new(bytes.Buffer)
	wav.WriteWAV16(wavData, 16000, 1, samples)

	// Load the whole sample
	decoder := wav.Decoder{}
	smp, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", smp.Rate)
	fmt.Printf("Channels: %d\n", smp.Channels)
	fmt.Printf("Frames: %d\n", smp.Frames())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Frames: 5
}

// Example_encoding demonstrates writing a WAV file without seeking.
func Example_encoding() {
	// Generate interleaved stereo samples
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	// Write to buffer (in real code, use os.Create)
	output := new(bytes.Buffer)
	err := wav.WriteWAV16(output, 8000, 2, samples)
	if err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Header: 44 bytes\n")
	fmt.Printf("Data: %d bytes (%d samples × 2 bytes)\n", len(samples)*2, len(samples))
	// Output:
	// Wrote 2044 bytes
	// Header: 44 bytes
	// Data: 2000 bytes (1000 samples × 2 bytes)
}

// Example_roundTrip shows encoding and then decoding.
func Example_roundTrip() {
	original := []int16{-16384, 0, 16384}

	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 8000, 1, original); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	decoder := wav.Decoder{}
	smp, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	for _, v := range smp.Data {
		fmt.Printf("%g\n", v)
	}
	// Output:
	// -0.5
	// 0
	// 0.5
}
