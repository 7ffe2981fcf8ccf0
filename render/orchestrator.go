package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline into a single frame
type Orchestrator struct {
	frame     *Frame
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing into a frame of the given dimensions
func NewOrchestrator(width, height int) *Orchestrator {
	return &Orchestrator{
		frame:     NewFrame(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Frame returns the composited frame of the last RenderFrame call
func (o *Orchestrator) Frame() *Frame {
	return o.frame
}

// RenderFrame runs every renderer in priority order and returns the frame
// Renderers own clearing; the background layer is expected to fill every pixel
func (o *Orchestrator) RenderFrame(ctx RenderContext) *Frame {
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.frame)
	}
	return o.frame
}
