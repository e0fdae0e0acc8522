// Package gallery defines the portfolio domain model: the Project records
// that the scene engine arranges in 3D space, and the StatusCheck records
// used for service liveness bookkeeping.
//
// Project contents are opaque to the scene engine except for Title, which
// seeds the deterministic visual-attribute derivation, and ID, which seeds
// the stable vertical jitter. Everything else passes through unchanged to
// the detail panel.
package gallery
