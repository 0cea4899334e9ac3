// Package blitfx runs a shader as a full-screen pass into an offscreen
// surface, the building block of a visual-regression fixture for
// [Ebitengine].
//
// # Quick start
//
// A [ShaderWriter] pairs a target surface with a [Shader]. Call Start once
// when the owner becomes active and Refresh whenever the output should be
// regenerated:
//
//	rt := blitfx.NewRenderTexture(256, 256)
//	w := blitfx.NewShaderWriter(rt, blitfx.SolidColorShader(blitfx.ColorRed))
//	w.Start()   // first activation
//	w.Refresh() // "Update RenderTexture"
//
// If the target or the shader is missing, both calls do nothing.
//
// # Surfaces
//
// Two [Surface] implementations exist. [RenderTexture] wraps an
// *ebiten.Image and runs the shader's Kage source on the GPU. [Canvas] holds
// premultiplied pixels in memory and runs the shader's CPU reference
// ([FragmentFunc]); it needs no graphics context and is what tests use.
// Built-in shaders ([SolidColorShader], [GradientShader], [CheckerShader],
// [PassthroughShader]) carry both.
//
// # Blit
//
// [Blit] covers every destination pixel. When no source is given, an opaque
// white image the size of the destination is bound in its place. Each pass
// gets a new [Material] with default uniform values; nothing is cached
// between passes other than the white stand-in and compiled shaders.
//
// # Fixtures and capture
//
// [LoadFixtures] builds writers from a JSON file. [Snapshot], [WritePNG]
// and [Capture] hand the results to image comparison tools.
//
// [Ebitengine]: https://ebitengine.org
package blitfx
