// Package viewer hosts the interactive window: a WebGPU point-sprite
// renderer, an orbit camera, and the frame loop that drives the scene
// animator.
package viewer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/atomvis-go/common"
	"github.com/Carmen-Shannon/atomvis-go/scene"
	"github.com/Carmen-Shannon/atomvis-go/viewer/camera"
)

const (
	// cloudPointSize is the sprite radius of one orbital cloud sample
	// in world units.
	cloudPointSize = 0.07

	// cylinderPointSpacing is the distance between consecutive sprites
	// when a bond segment is rasterized as a sprite chain.
	cylinderPointSpacing = 0.12

	// instanceStride is the byte size of one pointInstance.
	instanceStride = 32

	// cameraUniformSize covers the view-projection matrix plus the
	// billboard right and up vectors.
	cameraUniformSize = 96
)

// pointInstance is the per-sprite GPU layout: position, size, color.
// Must match InstanceInput in the WGSL source.
type pointInstance struct {
	Position [3]float32
	Size     float32
	Color    [4]float32
}

// Renderer draws an assembly as alpha-blended point sprites.
type Renderer interface {
	// Resize reconfigures the surface and depth buffer for a new
	// framebuffer size. Zero dimensions are ignored.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// RenderFrame draws one frame of the assembly from the camera's
	// point of view and presents it. A nil assembly clears the screen.
	//
	// Parameters:
	//   - asm: the live assembly, may be nil
	//   - cam: the orbit camera
	//
	// Returns:
	//   - error: a surface acquisition or encoding failure, or nil
	RenderFrame(asm *scene.Assembly, cam camera.OrbitCamera) error

	// Release frees all GPU resources.
	Release()
}

type pointRenderer struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	alphaMode     wgpu.CompositeAlphaMode
	presentMode   wgpu.PresentMode
	width         int
	height        int

	depthView *wgpu.TextureView

	pipeline      *wgpu.RenderPipeline
	uniformBuffer *wgpu.Buffer
	bindGroup     *wgpu.BindGroup

	instanceBuffer   *wgpu.Buffer
	instanceCapacity int

	// scratch is reused across frames to avoid per-frame allocation of
	// the instance staging slice.
	scratch []pointInstance

	clearColor wgpu.Color
}

var _ Renderer = &pointRenderer{}

// NewRenderer creates the WebGPU device chain for the given surface
// and builds the point-sprite pipeline. The surface descriptor is
// required and NewRenderer panics if it is nil or if device acquisition
// fails.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor (must not be nil)
//   - width: the initial framebuffer width in pixels
//   - height: the initial framebuffer height in pixels
//   - options: functional options to further configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) Renderer {
	if surfaceDescriptor == nil {
		panic("viewer: NewRenderer requires a non-nil surface descriptor")
	}
	runtime.LockOSThread()

	r := &pointRenderer{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		clearColor:  wgpu.Color{R: 0.02, G: 0.02, B: 0.05, A: 1.0},
	}
	for _, option := range options {
		option(r)
	}

	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to acquire adapter: %v", err))
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Viewer Device",
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to acquire device: %v", err))
	}
	r.device = device
	r.queue = device.GetQueue()

	capabilities := r.surface.GetCapabilities(adapter)
	r.surfaceFormat = capabilities.Formats[0]
	r.alphaMode = capabilities.AlphaModes[0]

	r.configureSurface(width, height)
	r.buildPipeline()

	return r
}

func (r *pointRenderer) configureSurface(width, height int) {
	r.width = width
	r.height = height

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   r.alphaMode,
	})

	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Viewer Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create depth texture: %v", err))
	}
	r.depthView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create depth view: %v", err))
	}
}

func (r *pointRenderer) buildPipeline() {
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "point_sprite",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: pointSpriteWGSL,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to compile shader: %v", err))
	}

	uniformEntry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
	}
	uniformEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	uniformEntry.Buffer.MinBindingSize = cameraUniformSize

	layout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{uniformEntry},
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create bind group layout: %v", err))
	}

	r.uniformBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create uniform buffer: %v", err))
	}

	r.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create bind group: %v", err))
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Point Sprite Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create pipeline layout: %v", err))
	}

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Point Sprite Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: instanceStride,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
						{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32},
						{ShaderLocation: 2, Offset: 16, Format: wgpu.VertexFormatFloat32x4},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: r.surfaceFormat,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleStrip,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		// Depth-tested against opaque geometry but not depth-written:
		// translucent sprites are not sorted.
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("viewer: failed to create render pipeline: %v", err))
	}
}

func (r *pointRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	r.configureSurface(width, height)
}

func (r *pointRenderer) RenderFrame(asm *scene.Assembly, cam camera.OrbitCamera) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	instances := r.stageInstances(asm)
	r.writeCameraUniform(cam)
	if err := r.ensureInstanceCapacity(len(instances)); err != nil {
		return err
	}
	if len(instances) > 0 {
		r.queue.WriteBuffer(r.instanceBuffer, 0, common.SliceToBytes(instances))
	}

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquiring surface texture: %w", err)
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("creating surface view: %w", err)
	}
	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("creating command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	if len(instances) > 0 {
		pass.SetPipeline(r.pipeline)
		pass.SetBindGroup(0, r.bindGroup, nil)
		pass.SetVertexBuffer(0, r.instanceBuffer, 0, wgpu.WholeSize)
		pass.Draw(4, uint32(len(instances)), 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("finishing command encoder: %w", err)
	}
	r.queue.Submit(commandBuffer)
	r.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()
	return nil
}

// stageInstances flattens the assembly into the reused scratch slice:
// nucleon spheres first, then bond sprite chains, then cloud points.
func (r *pointRenderer) stageInstances(asm *scene.Assembly) []pointInstance {
	r.scratch = r.scratch[:0]
	if asm == nil {
		return r.scratch
	}

	for _, s := range asm.Spheres {
		r.scratch = append(r.scratch, pointInstance{
			Position: [3]float32{s.Center.X(), s.Center.Y(), s.Center.Z()},
			Size:     s.Radius,
			Color:    [4]float32{s.Color.R, s.Color.G, s.Color.B, s.Alpha},
		})
	}

	for _, c := range asm.Cylinders {
		r.stageCylinder(c)
	}

	for _, cloud := range asm.Clouds {
		for i, p := range cloud.Points {
			col := cloud.Colors[i]
			r.scratch = append(r.scratch, pointInstance{
				Position: [3]float32{p.X(), p.Y(), p.Z()},
				Size:     cloudPointSize,
				Color:    [4]float32{col.R, col.G, col.B, cloud.Alpha},
			})
		}
	}
	return r.scratch
}

// stageCylinder rasterizes a bond segment as a chain of sprites along
// its axis.
func (r *pointRenderer) stageCylinder(c scene.Cylinder) {
	axis := c.End.Sub(c.Start)
	length := axis.Len()
	steps := int(length/cylinderPointSpacing) + 1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		p := c.Start.Add(axis.Mul(t))
		r.scratch = append(r.scratch, pointInstance{
			Position: [3]float32{p.X(), p.Y(), p.Z()},
			Size:     c.Radius,
			Color:    [4]float32{c.Color.R, c.Color.G, c.Color.B, c.Alpha},
		})
	}
}

// writeCameraUniform uploads the view-projection matrix and billboard
// axes. mgl32 matrices are column-major, matching WGSL mat4x4 layout.
func (r *pointRenderer) writeCameraUniform(cam camera.OrbitCamera) {
	aspect := float32(r.width) / float32(max(r.height, 1))
	viewProj := cam.ViewProjection(aspect)
	right, up := cam.Axes()

	var data [24]float32
	copy(data[:16], viewProj[:])
	data[16], data[17], data[18] = right.X(), right.Y(), right.Z()
	data[20], data[21], data[22] = up.X(), up.Y(), up.Z()
	r.queue.WriteBuffer(r.uniformBuffer, 0, common.SliceToBytes(data[:]))
}

// ensureInstanceCapacity grows the instance buffer geometrically so
// steady-state frames never reallocate.
func (r *pointRenderer) ensureInstanceCapacity(count int) error {
	if count <= r.instanceCapacity {
		return nil
	}
	capacity := max(r.instanceCapacity*2, count, 4096)

	if r.instanceBuffer != nil {
		r.instanceBuffer.Release()
	}
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Point Instance Buffer",
		Size:  uint64(capacity) * instanceStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		r.instanceBuffer = nil
		r.instanceCapacity = 0
		return fmt.Errorf("allocating instance buffer: %w", err)
	}
	r.instanceBuffer = buf
	r.instanceCapacity = capacity
	return nil
}

func (r *pointRenderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.instanceBuffer != nil {
		r.instanceBuffer.Release()
		r.instanceBuffer = nil
	}
	if r.uniformBuffer != nil {
		r.uniformBuffer.Release()
		r.uniformBuffer = nil
	}
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
}
