// Package grove is a retained-mode 3D scene graph for [Ebitengine].
//
// A scene is a tree of [Object] values. Each object owns an ordered list of
// [Transform] elements composed into its local matrix, a list of drawable
// [Geometry], and its child objects. World matrices are cached and only
// recomputed for the part of the tree marked dirty.
//
// # Quick start
//
//	scene := grove.NewScene()
//	arm := scene.NewObject("arm")
//	arm.AddTransform(grove.NewTranslation(1, 0, 0))
//	hand := grove.NewObject(arm)
//	hand.AddTransform(grove.NewTranslation(0, 1, 0))
//	hand.AddGeometry(grove.NewBox("hand", 0.2, 0.2, 0.2))
//
//	grove.Run(scene, grove.RunConfig{Title: "Arm", Width: 640, Height: 480})
//
// # Dirty tracking
//
// Attaching objects, geometry or transforms marks the affected objects
// dirty, and dirtiness always propagates up to the root. [Scene.Update]
// (or [Object.Project] on any subtree) skips clean subtrees entirely, so a
// second projection with no mutation in between does no work.
//
// # Views
//
// Every [View] has an index in [0, MaxViews). Setting bit i of an object's
// or geometry's Hidden mask hides it from view i; a hidden object hides its
// whole subtree. [Scene.Collect] returns the visible geometry for one view
// in tree order.
//
// # Drivers
//
// An object's behavior for Clear, Dispose, GetGeometry and Project comes
// from its [Chain] of [Driver] tables, fixed at construction. A table may
// override any subset and call the inherited implementation through the
// next chain it is given. [ObjectDriver] always ends the chain.
//
// grove is single-threaded: serialize all mutation, projection and drawing.
//
// [Ebitengine]: https://ebitengine.org
package grove
