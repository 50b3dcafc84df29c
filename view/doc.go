// Package view is the interactive viewer for sunflower patterns, built on
// [Ebitengine].
//
// A [Scene] receives every generation pass through [Scene.Replace] (it
// implements sunflower.Renderer) and rebuilds its pattern layer: one node per
// element, children nested, nodes of one geometry sharing one vertex buffer.
// Drawing sorts shapes by world z and submits them as a single batched
// DrawTriangles32 call.
//
// The world is y-up. The [Camera] flips it onto the screen, pans with a
// mouse drag, zooms about the cursor on the wheel, and animates fit and
// re-center moves with gween.
//
// [Run] opens a window around an engine:
//
//	eng := sunflower.NewEngine(sunflower.DefaultParams(sunflower.ModeSeed), nil)
//	if err := view.Run(eng, view.RunConfig{Title: "Sunflower"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Keys
//
//	Tab, 1, 2         toggle mode, seed, petal
//	Left, Right       nudge rotation by the step size
//	Up, Down          amount ±1 (never below 1)
//	PageUp, PageDown  amount ±10
//	P, I, E           rotation = fractional part of φ, π, e
//	Enter             type a rotation expression (Enter commits, Escape cancels)
//	Space             toggle animation (seed mode)
//	[, ]              step-size slider
//	R                 reset to the mode's defaults
//	F, C              fit pattern, center origin
//	H                 toggle the panel
//	F12               screenshot
//
// # Test scripts
//
// A [TestRunner] loaded from JSON drives the same actions frame by frame and
// takes screenshots, for automated visual checks.
//
// [Ebitengine]: https://ebitengine.org
package view
