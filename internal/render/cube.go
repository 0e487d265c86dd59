package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// litCube holds the unit cube mesh and its lit material. Created lazily on first draw
// so that GPU resources are allocated after the window/OpenGL context exists.
type litCube struct {
	mesh   rl.Mesh
	mtl    rl.Material
	loaded bool
}

func (c *litCube) ensure() {
	if c.loaded {
		return
	}
	c.mesh = rl.GenMeshCube(1, 1, 1)
	c.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		c.mtl.Shader = shader
	}
	c.loaded = true
}

// draw draws one cube centred at position with edge length size, tinted col.
// setView must have been called this frame.
func (c *litCube) draw(position rl.Vector3, size float32, col rl.Color) {
	c.ensure()
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}
	if size == 0 {
		size = 1
	}
	transform := rl.MatrixMultiply(rl.MatrixScale(size, size, size), rl.MatrixTranslate(position.X, position.Y, position.Z))
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// setView sets the camera position used for specular highlights and the light uniforms (cgo-safe: local arrays).
func (c *litCube) setView(viewPos rl.Vector3) {
	c.ensure()
	shader := c.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	pos := [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	light := [3]float32{lightDir[0], lightDir[1], lightDir[2]}
	amb := [4]float32{ambient[0], ambient[1], ambient[2], ambient[3]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, pos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, light[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

func (c *litCube) unload() {
	if !c.loaded {
		return
	}
	rl.UnloadMesh(&c.mesh)
	rl.UnloadMaterial(c.mtl)
	c.loaded = false
}

// lightDir points from the scene towards the light: above and to the right.
var lightDir = [3]float32{0.5, 1, 0.5}

// ambient keeps faces turned away from the light from going black.
var ambient = [4]float32{0.35, 0.35, 0.38, 1.0}

const (
	lightIntensity   = float32(0.75)
	specularPower    = float32(32)
	specularStrength = float32(0.25)
)

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = vec3(spec) * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)
