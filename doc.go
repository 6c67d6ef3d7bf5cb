// Package embedview is an interactive visualizer for embeddings of
// model attributions. It renders a set of 2-D-projected points as a
// pan/zoom point cloud colored by cluster assignment, and lets an
// analyst hover individual points and rubber-band-select groups of
// them — the exploration surface used to hunt for spurious
// ("Clever Hans") classification strategies.
//
// The host application supplies a [PointSet] (replacing it wholesale
// when the user switches category, embedding or clustering), feeds
// mouse events to [Viewer.HandleMouse], and consumes hover and
// committed-selection events to fetch preview imagery. File parsing,
// attribution databases and heatmap rendering live upstream; this
// package only ever sees already-parsed point data.
//
// Rendering goes through the surface backend registry: the software
// rasterizer in package surface is always available, and importing
// backend/wgpu registers a GPU backend at higher priority.
package embedview
