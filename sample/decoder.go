// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"io"
	"sync"
)

// Decoder constructs a Sample from an input stream. Decoders take a seeker
// because container formats locate their data chunks by offset.
type Decoder interface {
	Decode(r io.ReadSeeker) (*Sample, error)
}

// Registry for decoders by file extension (e.g., ".wav", ".mp3", ".ogg").
// Keys are matched verbatim; register lowercase extensions with the dot.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[ext]
	return d, ok
}

// Extensions lists the registered extensions in no particular order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}

	return exts
}
