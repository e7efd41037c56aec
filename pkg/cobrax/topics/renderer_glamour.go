package topics

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// TopicWidth is the wrap column for markdown topics. Topics quote formula
// snippets and key tables that read badly when wrapped to a wide terminal.
const TopicWidth = 80

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path
	// to a JSON style; "auto" follows the terminal background.
	Style string
	// Width wraps lines at this column; 0 leaves wrapping to glamour.
	Width int
}

// NewGlamourRenderer returns the renderer used for brewbump help topics.
// NO_COLOR selects the notty style so code blocks stay copyable.
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style, Width: TopicWidth}
}

// Render formats markdown content; other formats and rendering failures
// fall back to the plain renderer.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return plain(content)
	}

	opts := []glamour.TermRendererOption{r.styleOption()}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return plain(content)
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return plain(content)
	}
	return strings.TrimRight(rendered, " \n") + "\n"
}

func (r *GlamourRenderer) styleOption() glamour.TermRendererOption {
	if r.Style == "" || r.Style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStylePath(r.Style)
}
