// Package signature computes a deterministic content key for an expression
// tree, used to give Function values structural equality without re-walking
// both trees on every comparison.
//
// The technique — join a canonical, deterministic textual encoding of the
// structure and hash it with sha256 — is adapted from the host toolchain's
// content-addressing approach to build artifacts, repointed here at
// expression trees instead of build inputs.
package signature
