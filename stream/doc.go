// SPDX-License-Identifier: EPL-2.0

// Package stream delivers synthesized audio in real time through a pull
// model: the playback host reads PCM whenever its device needs more, and the
// session renders just enough blocks to satisfy each read.
//
// # The Pull Model
//
// A session sits between a render backend (engine.Engine) and an audio host.
// The host never schedules rendering; it only reads. When the session's ring
// buffer runs dry mid-read, the session asks the host's pull callback for the
// current note state, renders one block, and keeps copying:
//
//	pull := func(req *engine.Request) error {
//	    req.Notes = score // notes in absolute seconds since stream start
//	    return nil
//	}
//
//	session, err := stream.Open(stream.Config{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BlockSize:  512,
//	}, nil, pull)
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	buf := make([]float32, session.BufSize())
//	for {
//	    n, err := session.ReadSamples(buf)
//	    // hand buf[:n] to the audio device
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Passing a nil engine selects the built-in additive reference synthesizer.
//
// # Ordering Guarantees
//
// Frames reach the reader exactly once and in render order, regardless of how
// read sizes line up with the block size. A read larger than the ring simply
// triggers several render passes; a read of a few samples leaves the rest
// buffered for the next call.
//
// # Concurrency
//
// One mutex guards the session; one condition variable wakes readers.
// ReadSamples may be called from any goroutine, including audio device
// callbacks. Rendering happens synchronously on the reading goroutine, so
// block size bounds the work done per wakeup.
//
// # Shutdown
//
// Close wakes any blocked reader and makes every subsequent read return
// io.EOF. An interrupted read keeps what it already copied and reports a
// short count, the same convention io.Reader consumers expect at end of
// stream.
//
// # Errors
//
// Configuration problems surface at Open (ErrInvalidConfig, ErrNilCallback).
// A failing pull callback or engine aborts the whole read with a wrapped
// error and no partial delivery; errors.Is reaches the original cause.
package stream
