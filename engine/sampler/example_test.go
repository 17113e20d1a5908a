// SPDX-License-Identifier: EPL-2.0

package sampler_test

import (
	"fmt"
	"log"

	"github.com/crlotwhite/ucra-go/engine"
	"github.com/crlotwhite/ucra-go/engine/sampler"
	"github.com/crlotwhite/ucra-go/sample"
)

// Example renders a note from a programmatically built voicebank.
func Example() {
	smp := &sample.Sample{
		Data:     []float32{0.5, 0.5, 0.5, 0.5},
		Rate:     44100,
		Channels: 1,
	}

	bank := sampler.NewBank()
	bank.Add("a", smp)

	eng, err := sampler.New(bank, nil)
	if err != nil {
		log.Fatal(err)
	}

	notes := []engine.Note{
		{Start: 0, Duration: 1, Pitch: 60, Velocity: 127, Lyric: "a"},
	}

	pcm, err := eng.Render(notes, 44100, 1, 4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(pcm)
	// Output:
	// [0.5 0.5 0.5 0.5]
}

// Example_registry wires a bank into the engine registry.
func Example_registry() {
	bank := sampler.NewBank()
	bank.Add("a", &sample.Sample{Data: []float32{0.1, 0.2}, Rate: 44100, Channels: 1})

	reg := engine.NewRegistry()
	reg.Register("sampler", sampler.Factory(bank))

	eng, err := reg.New("sampler", map[string]string{"base_note": "60"})
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	fmt.Println(eng.Info())
	// Output:
	// UCRA Voicebank Sampler Engine v1.0
}
