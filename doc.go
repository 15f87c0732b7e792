// Package glint is the focus and navigation engine of a terminal-UI
// widget toolkit. Widget definitions and layout emission live with the
// host; glint owns the behavioral core: per-container selection cycling,
// the global focus ring, overlay stacking and dismissal, split-pane focus
// transfer, scroll-follow, window dragging and text-entry editing.
//
// The engine is single-threaded and tick-driven. The host hands it one
// immutable input Snapshot per tick; the engine evaluates its subsystems
// in a fixed order against a tree of opaque node handles and a typed
// component store, then caches the snapshot for next tick's edge
// detection. Anomalous conditions are policy, not errors: indices clamp,
// boundaries no-op, empty scopes are skipped.
package glint
