package topics

import "strings"

// Renderer formats topic content for the terminal. format is the topic
// file's extension, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written
type PlainRenderer struct{}

// Render returns the content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	return plain(content)
}

func plain(content string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
