package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	quadStride = 6 // x, y, r, g, b, a
	glowStride = 8 // x, y, size, r, g, b, a, rotation

	maxQuadVerts   = 6 * 4096
	maxGlowSprites = 2048
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	quadURes int32

	glowProg uint32
	glowVAO  uint32
	glowVBO  uint32
	glowURes int32
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	glowProg, err := linkProgram(glowVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	r := &Renderer{quadProg: quadProg, glowProg: glowProg}

	// Quad VAO/VBO: streamed triangles.
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	stride := int32(quadStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuadVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	// Glow VAO/VBO: point sprites.
	gl.GenVertexArrays(1, &r.glowVAO)
	gl.GenBuffers(1, &r.glowVBO)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	stride = int32(glowStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxGlowSprites*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(quadProg)
	r.quadURes = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.glowVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.glowVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int, clear RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := clear.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.quadProg)
	gl.Uniform2f(r.quadURes, float32(fbW), float32(fbH))
	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))
}

// DrawQuads renders alpha-blended triangles. buf holds quadStride floats per vertex.
func (r *Renderer) DrawQuads(buf []float32) {
	count := len(buf) / quadStride
	if count == 0 {
		return
	}
	if count > maxQuadVerts {
		count = maxQuadVerts - maxQuadVerts%3
	}
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*quadStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawGlow renders light sprites with additive blending and radial falloff.
func (r *Renderer) DrawGlow(buf []float32) {
	count := len(buf) / glowStride
	if count == 0 {
		return
	}
	if count > maxGlowSprites {
		count = maxGlowSprites
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*glowStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
