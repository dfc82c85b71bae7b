package viewer

// pointSpriteWGSL renders every scene node as a camera-facing quad.
// Each instance carries a world position, a sprite size, and an RGBA
// color; the fragment stage rounds the quad into a soft-edged disc.
const pointSpriteWGSL = `
struct CameraUniform {
    view_proj: mat4x4<f32>,
    right: vec4<f32>,
    up: vec4<f32>,
};
@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct InstanceInput {
    @location(0) position: vec3<f32>,
    @location(1) size: f32,
    @location(2) color: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
    @location(1) corner: vec2<f32>,
};

const corners = array<vec2<f32>, 4>(
    vec2<f32>(-1.0, -1.0),
    vec2<f32>(1.0, -1.0),
    vec2<f32>(-1.0, 1.0),
    vec2<f32>(1.0, 1.0),
);

@vertex
fn vs_main(@builtin(vertex_index) vi: u32, instance: InstanceInput) -> VertexOutput {
    let corner = corners[vi];
    let world = instance.position
        + camera.right.xyz * corner.x * instance.size
        + camera.up.xyz * corner.y * instance.size;

    var out: VertexOutput;
    out.clip_position = camera.view_proj * vec4<f32>(world, 1.0);
    out.color = instance.color;
    out.corner = corner;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let r2 = dot(in.corner, in.corner);
    if r2 > 1.0 {
        discard;
    }
    let falloff = exp(-2.4 * r2);
    return vec4<f32>(in.color.rgb, in.color.a * falloff);
}
`
