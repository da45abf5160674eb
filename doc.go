// Package rendergraph schedules the GPU passes of one frame and synthesizes
// the synchronization barriers between them.
//
// # Overview
//
// A caller builds a Graph once per frame: it registers the buffers and
// textures the frame uses, registers every pass together with the resources
// it reads and writes, and adds explicit ordering edges. Execute then
// computes a topological order, walks it once to find data hazards, records
// barrier command buffers through the Device, invokes each pass, and returns
// every command buffer in submission order.
//
// # Quick Start
//
//	g := rendergraph.New()
//
//	particles := g.AddBuffer(particleBuf)
//	gbuffer := g.AddTexture(albedoTex)
//
//	simulate := g.AddPass(simulatePass, rendergraph.Write(particles))
//	geometry := g.AddPass(geometryPass,
//	    rendergraph.Read(particles),
//	    rendergraph.Write(gbuffer).WithTransition(rendergraph.LayoutColorAttachment, rendergraph.LayoutShaderReadOnly))
//	lighting := g.AddPass(lightingPass,
//	    rendergraph.Read(gbuffer).WithLayout(rendergraph.LayoutShaderReadOnly))
//
//	g.AddEdge(simulate, geometry)
//	g.AddEdge(geometry, lighting)
//
//	cmds, err := g.Execute(device)
//	if err != nil {
//	    // log and skip this frame
//	}
//	queue.Submit(cmds)
//
// # Hazards
//
// A resource written by an earlier pass in the schedule is a hazard for
// every later pass that uses it.
//
// Buffers are tracked as a whole: a later use gets a barrier covering the
// full buffer.
//
// Textures get a layout transition only when the later use carries a
// TextureBarrierHint whose NeedLayout differs from the tracked layout.
// Without a hint the pass owns the transition; the schedule still orders it
// after the writer. Hinted reads also update the tracked layout.
//
// # Ordering
//
// Only explicit edges constrain the order; declared usages do not add
// edges. Independent passes are ordered by the ReadyOrder option
// (ReadyFIFO by default).
//
// # Backends
//
// The Device interface is the only capability the graph needs. The
// backend/record package records barriers as inspectable commands and the
// backend/native package records them on a gogpu/wgpu HAL device. The
// barrier package maps layout transitions to pipeline stages and access
// masks for backends that need them.
package rendergraph
