// SPDX-License-Identifier: EPL-2.0

// Package flagmap translates legacy resampler flag strings into engine
// flags using per-engine rule documents.
//
// Classic resampler hosts pass flags as a single string such as
// "g=50;Mt=-20;mode=0". Modern engines take named key/value options
// instead, and each engine names and ranges them differently. A rule
// document bridges the two: it lists, per engine, which legacy flag
// feeds which engine flag and how the value is transformed on the way.
//
// # Transforms
//
// Four transform kinds exist. Copy passes the value through, Scale
// reads it as a float in [0, 1] and maps it linearly onto a target
// interval, Map translates it through a lookup table, and Constant
// replaces it with a fixed value. Values a Scale or Map rule cannot
// translate produce a warning instead of an output flag, so one bad
// flag never aborts a render.
//
// # Rule Documents
//
// Rule documents are JSON:
//
//	{
//	  "engine": "worldline",
//	  "version": "1",
//	  "rules": [
//	    {
//	      "source": {"name": "g"},
//	      "target": {"name": "gender", "default": 0.5},
//	      "transform": {"kind": "scale", "scale": [0, 1]}
//	    }
//	  ]
//	}
//
// Rules apply in document order, and the output keeps that order.
package flagmap
