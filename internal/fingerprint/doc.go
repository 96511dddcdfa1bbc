// Package fingerprint computes the deterministic build fingerprint for a
// theme's Tailwind inputs.
//
// The input set is declared as a literal, ordered list (see Inputs):
//   - tailwind/tailwind.config.js (required)
//   - tailwind/postcss.config.js (optional; absent contributes zero bytes)
//   - static/theme_a/css/input.css (required)
//   - templates/**/*.html (required, at least one match, sorted by path)
//
// The raw bytes of every resolved file are fed into a single SHA-256
// accumulator in that order with no separators, and the digest is returned as
// 64 lowercase hex characters. Computation is all-or-nothing: a missing
// required input yields a *MissingInputError and no digest.
//
// Primary entry points:
//   - Compute: resolves and hashes the input set for a theme root
//   - Resolve: returns the ordered manifest of files Compute would hash
package fingerprint
