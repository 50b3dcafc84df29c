// Package sunflower generates phyllotaxis patterns: seeds laid out on a
// Vogel spiral, or petals arranged on a ring as nested ellipses.
//
// The package is headless. It computes the placed elements of a pattern and
// hands them to a [Renderer]; drawing is left to the view package, the ecs
// sink and the export writers.
//
// # Quick start
//
//	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), renderer)
//	eng.Editor.SetCount(250)
//	eng.Editor.SetRotationExpr("1/3 + 1/5")
//	eng.Tick(1.0 / 60) // runs one pass and calls renderer.Replace
//
// # Modes
//
// In [ModeSeed] element i sits at angle 2π·rotation·i and radius
// 2·√i·spacing. Every seed shares one circle geometry and one material.
//
// In [ModePetal] element i sits on a ring of radius spacing, rotated by its
// angle plus a quarter turn. Each petal is an outer ellipse with a smaller
// inner ellipse stacked above it. Inner ellipses share cached geometry; outer
// ellipses are allocated per petal.
//
// # Frame order
//
// A host loop applies input through [Editor] first, then calls
// [Engine.Tick]. Tick advances the [Animator] (which regenerates right away
// when enabled) and finally lets the [Controller] run a pass if anything is
// still pending. A frame with no changes does no work.
//
// # Caching
//
// [ShapeCache] holds at most one geometry and one material. Switching mode
// or resetting drops the geometry, so the next pass allocates a fresh one.
// Changing the radius or color replaces the entry on the next lookup.
package sunflower
