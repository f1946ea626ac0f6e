package topics

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw content and the file extension it came from and
	// returns the text to print.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged. It is the default.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
