// SPDX-License-Identifier: EPL-2.0

package sampler

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/crlotwhite/ucra-go/sample"
)

// Bank maps lyrics to voicebank samples. Samples are downmixed to mono on
// insertion; the sampler resamples them per note at render time.
type Bank struct {
	entries  map[string]*entry
	fallback string // lexicographically smallest lyric
}

type entry struct {
	mono []float32
	rate int
}

func NewBank() *Bank {
	return &Bank{entries: make(map[string]*entry)}
}

// Add registers a sample under lyric. Re-adding a lyric replaces the
// previous sample.
func (b *Bank) Add(lyric string, smp *sample.Sample) {
	b.entries[lyric] = &entry{mono: smp.Mono(), rate: smp.Rate}

	if b.fallback == "" || lyric < b.fallback {
		b.fallback = lyric
	}
}

func (b *Bank) Len() int {
	return len(b.entries)
}

// Lyrics returns the registered lyrics in sort order.
func (b *Bank) Lyrics() []string {
	out := make([]string, 0, len(b.entries))
	for l := range b.entries {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// lookup resolves a lyric. Unknown syllables fall back to the first lyric in
// sort order so they still sound, which keeps rendering deterministic.
func (b *Bank) lookup(lyric string) *entry {
	if e, ok := b.entries[lyric]; ok {
		return e
	}

	return b.entries[b.fallback]
}

// LoadBank reads every decodable file in dir into a bank. The decoder is
// picked from codecs by lowercased file extension; files with unregistered
// extensions (oto.ini and friends) are skipped. The lyric is the file name
// without its extension.
func LoadBank(dir string, codecs *sample.Registry) (*Bank, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read voicebank dir: %w", err)
	}

	bank := NewBank()

	for _, f := range files {
		if f.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(f.Name()))
		dec, ok := codecs.Get(ext)
		if !ok {
			continue
		}

		smp, err := decodeFile(filepath.Join(dir, f.Name()), dec)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f.Name(), err)
		}

		bank.Add(strings.TrimSuffix(f.Name(), filepath.Ext(f.Name())), smp)
	}

	if bank.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBank, dir)
	}

	return bank, nil
}

func decodeFile(path string, dec sample.Decoder) (*sample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dec.Decode(f)
}
