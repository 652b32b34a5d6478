package shaders

const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// SceneVertexWGSL transforms each vertex by world, then view, then
// projection. The matrices are applied one after another, never pre-multiplied.
const SceneVertexWGSL = `
struct Transforms {
    world: mat4x4<f32>,
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> transforms: Transforms;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(input: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    var pos = vec4<f32>(input.position, 1.0);
    pos = transforms.world * pos;
    pos = transforms.view * pos;
    pos = transforms.projection * pos;
    out.position = pos;
    out.color = input.color;
    return out;
}
`

// SceneFragmentWGSL passes the interpolated vertex color through.
const SceneFragmentWGSL = `
struct FragmentInput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@fragment
fn fs_main(input: FragmentInput) -> @location(0) vec4<f32> {
    return input.color;
}
`
