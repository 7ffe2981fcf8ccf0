package render

// SystemRenderer is implemented by scene layers with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, frame *Frame)
}
