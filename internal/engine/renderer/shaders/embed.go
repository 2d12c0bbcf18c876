// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms vertices and passes world-space position and
// normal to the fragment stage.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies the three-point Lambert lighting.
//
//go:embed scene.frag
var SceneFragmentShader string
