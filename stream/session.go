// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"
	"sync"

	"github.com/crlotwhite/ucra-go/engine"
)

// minRingFrames is the floor for the ring capacity. The ring holds at least
// four blocks so short reads cannot starve the renderer.
const minRingFrames = 4096

// Config describes the PCM format a session delivers.
type Config struct {
	// SampleRate in Hz.
	SampleRate int
	// Channels per frame (1=mono, 2=stereo).
	Channels int
	// BlockSize is the render granularity in frames: every pull renders at
	// most one block.
	BlockSize int
	// Flags is forwarded to the engine untouched. Reserved.
	Flags uint32
}

// PullFunc supplies note state for the next block. The session pre-fills the
// request's format fields from its configuration; the callback fills Notes
// with the score around the current position (absolute times in seconds since
// stream start). Returning an error aborts the read that triggered the pull.
//
// The request is lent for the duration of the call and reused afterwards.
// The callback runs with the session locked, so it must not call back into
// the session.
type PullFunc func(req *engine.Request) error

type sessionState int

const (
	stateOpen sessionState = iota
	stateClosing
	stateClosed
)

// Session is a pull-based synthesis stream. The host reads PCM; whenever the
// internal ring runs dry, the session asks the pull callback for note state,
// renders one block, and buffers it. All rendering happens on the reader's
// goroutine, so hosts that never read never pay for rendering.
//
// A session is safe for concurrent use. One mutex guards all state; a single
// condition variable wakes readers when data arrives or the session closes.
type Session struct {
	mu   sync.Mutex
	cond *sync.Cond

	cfg  Config
	pull PullFunc

	ring     *ringBuffer
	renderer *blockRenderer

	eng        engine.Engine
	ownsEngine bool

	// req is rebuilt and lent to the pull callback on every refill.
	req engine.Request

	state     sessionState
	generated uint64
}

// Open validates the configuration and prepares a session. A nil eng selects
// the built-in additive reference engine, which the session owns and closes.
// The ring buffer holds max(4*BlockSize, 4096) frames.
func Open(cfg Config, eng engine.Engine, pull PullFunc) (*Session, error) {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 || cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("%w: %dHz, %dch, block %d",
			ErrInvalidConfig, cfg.SampleRate, cfg.Channels, cfg.BlockSize)
	}

	if pull == nil {
		return nil, ErrNilCallback
	}

	ownsEngine := false
	if eng == nil {
		eng = engine.NewAdditive()
		ownsEngine = true
	}

	s := &Session{
		cfg:        cfg,
		pull:       pull,
		ring:       newRingBuffer(max(4*cfg.BlockSize, minRingFrames), cfg.Channels),
		renderer:   newBlockRenderer(eng, cfg),
		eng:        eng,
		ownsEngine: ownsEngine,
	}
	s.cond = sync.NewCond(&s.mu)

	return s, nil
}

// SampleRate of the PCM stream in Hz.
func (s *Session) SampleRate() int {
	return s.cfg.SampleRate
}

// Channels count (e.g., 1=mono, 2=stereo).
func (s *Session) Channels() int {
	return s.cfg.Channels
}

// BufSize suggests a read buffer size: one block of interleaved samples.
func (s *Session) BufSize() int {
	return s.cfg.BlockSize * s.cfg.Channels
}

// Generated reports how many frames have been rendered since open.
func (s *Session) Generated() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generated
}

// Engine returns the render backend the session draws from.
func (s *Session) Engine() engine.Engine {
	return s.eng
}

// ReadSamples fills dst with interleaved float32 samples in [-1,1]. len(dst)
// must be a multiple of Channels. It renders as many blocks as needed to
// fill dst, in order, with no frame lost or duplicated across calls.
//
// Returns the number of samples written. Close stops delivery where it
// stands: the interrupted read returns its short count with io.EOF, and
// later reads return (0, io.EOF). If the pull callback or the engine fails,
// the read reports 0 and the error; dst contents are then unspecified.
func (s *Session) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.cfg.Channels != 0 {
		return 0, ErrInvalidDstSize
	}

	want := len(dst) / s.cfg.Channels

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := 0
	for copied < want && s.state == stateOpen {
		if s.ring.available == 0 {
			if err := s.refill(); err != nil {
				return 0, err
			}
		}

		// Nothing produced and still open: block until a producer signals
		// or the session closes.
		if s.ring.available == 0 && s.state == stateOpen {
			s.cond.Wait()
			continue
		}

		copied += s.ring.read(dst[copied*s.cfg.Channels:], want-copied)
	}

	if s.state != stateOpen {
		return copied * s.cfg.Channels, io.EOF
	}

	return copied * s.cfg.Channels, nil
}

// refill renders one block into the ring. Caller holds s.mu. On error the
// ring and counters are untouched.
func (s *Session) refill() error {
	s.req = engine.Request{
		SampleRate: s.cfg.SampleRate,
		Channels:   s.cfg.Channels,
		BlockSize:  s.cfg.BlockSize,
		Flags:      s.cfg.Flags,
	}

	if err := s.pull(&s.req); err != nil {
		return fmt.Errorf("pull callback: %w", err)
	}

	frames := min(s.cfg.BlockSize, s.ring.free())
	if frames == 0 {
		return nil
	}

	pcm, err := s.renderer.render(s.req.Notes, s.generated, frames)
	if err != nil {
		return err
	}

	s.ring.write(pcm, frames)
	s.generated += uint64(frames)
	s.cond.Signal()

	return nil
}

// Close stops delivery and wakes blocked readers. Buffered but undelivered
// frames are dropped. Close is idempotent, safe on a nil session, and always
// returns nil.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		return nil
	}

	s.state = stateClosing
	s.cond.Broadcast()
	s.state = stateClosed
	s.ring.release()
	s.mu.Unlock()

	if s.ownsEngine {
		return s.eng.Close()
	}

	return nil
}
