// SPDX-License-Identifier: EPL-2.0

// Package manifest parses and validates resampler engine manifests.
//
// A manifest is a JSON document shipped next to an engine binary. Hosts
// read it to learn the engine's identity, how to invoke it (shared
// library, command line tool or IPC peer), which sample rates and channel
// layouts it can produce, and which flags it accepts.
//
// # Validation
//
// Parse and Load reject documents that fail the schema: name, version,
// entry and audio are required; the entry type must be "dll", "cli" or
// "ipc"; rates must fall in (0, 192000] and channel counts in [1, 8];
// every flag needs a key, a description and a known type, numeric ranges
// must be ordered [min, max] pairs, and enum flags must list their
// values. Schema violations wrap ErrInvalidManifest, while documents
// that are not JSON at all wrap ErrInvalidJSON.
//
// # Flag Defaults
//
// Flag defaults may be written as JSON strings, numbers or booleans.
// They are normalized to strings, the form engines receive them in:
// numbers are rendered with six decimal places and booleans as "true"
// or "false".
package manifest
