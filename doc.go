// Package sunstroke generates the paint-by-numbers sunflower scene behind
// the coloring mini-game of the same name, and carries the small amount of
// game state that sits on top of it.
//
// The core is the scene layout generator: given a canvas size it decomposes
// the authored still-life (sky, table, a vase, and three sunflowers) into a
// set of solid reference shapes — the "reality" layer — and a population of
// brush-shaped paintable strokes covering roughly the same areas, one target
// pigment per stroke. Stroke placement is rejection sampling: candidates
// whose bounding box leaves the canvas, crowds a same-pigment neighbor, or
// overlaps one too much are silently discarded and redrawn until each
// region's attempt budget runs out.
//
//	gen := sunstroke.NewGenerator()
//	level := gen.Generate(360, 640)
//
// Consumers render level.Shapes and level.Strokes in ascending ZIndex and
// mutate only a stroke's CurrentColor. PaintSession and MadnessMeter wrap
// the usual play loop; StrokeMesh and ShapeMesh turn the geometry into
// triangles for [Ebitengine]. See examples/play for a runnable game.
//
// [Ebitengine]: https://ebitengine.org
package sunstroke
