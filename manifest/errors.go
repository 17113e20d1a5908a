// SPDX-License-Identifier: EPL-2.0

package manifest

import "errors"

var (
	// ErrInvalidJSON indicates the manifest document is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid manifest JSON")

	// ErrInvalidManifest indicates well-formed JSON that violates the
	// manifest schema.
	ErrInvalidManifest = errors.New("invalid manifest")
)
