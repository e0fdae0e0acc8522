// Package scene implements the procedural scene-layout and selection engine.
//
// The engine maps a list of gallery projects to a declarative 3D scene
// description: each project gets a deterministic shape and color derived
// from its title, a position on a circular ring, and emphasis parameters
// driven by a single-selection state machine. A decorative particle field
// is generated once per composer mount and never participates in picking.
//
// The package has no rendering dependencies. Renderers (the HTTP API and
// the terminal viewer both count as renderers here) consume Scene() output
// and feed pointer picks back through Pick and Close.
package scene
