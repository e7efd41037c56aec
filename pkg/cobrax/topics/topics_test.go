package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpFS() fstest.MapFS {
	return fstest.MapFS{
		"help/option-dry-run.txt": {Data: []byte("Dry run help")},
		"help/formula.md":         {Data: []byte("# Formula\n\nFormula layout details")},
		"help/config.txxt":        {Data: []byte("Configuration Guide\n==================")},
		"help/ignore.json":        {Data: []byte("This should be ignored")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(helpFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"option-dry-run", true, "Dry run help"},
			{"formula", true, "# Formula\n\nFormula layout details"},
			{"config", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(helpFS(), Options{Extensions: []string{".txt", ".md", ".txxt"}})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("config")
		require.True(t, exists)
		assert.Equal(t, "help/config.txxt", topic.FilePath)

		_, exists = tm.GetTopic("ignore")
		assert.False(t, exists)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(helpFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"formula", "formula", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(helpFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"formula", "option-dry-run"}, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "brewbump", Short: "Bump formulas"}
	root.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Update formula files",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)

	_, err := Initialize(root, helpFS())
	require.NoError(t, err)
	return root, out
}

func TestInitialize_HelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "topic",
			args:     []string{"help", "formula"},
			contains: []string{"Formula layout details"},
		},
		{
			name:     "option topic",
			args:     []string{"help", "--dry-run"},
			contains: []string{"Dry run help"},
		},
		{
			name:     "topic list",
			args:     []string{"help", "topics"},
			contains: []string{"General topics:", "  formula", "Option topics:", "  --dry-run", "brewbump help <topic>"},
		},
		{
			name:     "command help",
			args:     []string{"help", "update"},
			contains: []string{"Update formula files"},
		},
		{
			name:     "root help",
			args:     []string{"help"},
			contains: []string{"Bump formulas"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestInitialize_ReplacesHelpCommand(t *testing.T) {
	root, _ := newRoot(t)

	count := 0
	for _, c := range root.Commands() {
		if c.Name() == "help" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# Title\n", plain.Render("# Title", ".md"))
	assert.Equal(t, "# Title\n", plain.Render("# Title\n\n", ".md"))

	glamour := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain text\n", glamour.Render("plain text", ".txt"))

	rendered := glamour.Render("# Title\n\nSome **bold** text", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "bold")
	assert.True(t, strings.HasSuffix(rendered, "text\n"), "got %q", rendered)
}

func TestNewGlamourRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	r := NewGlamourRenderer()
	assert.Equal(t, "auto", r.Style)
	assert.Equal(t, TopicWidth, r.Width)

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "notty", NewGlamourRenderer().Style)
}

func TestGlamourRenderer_WrapsAtTopicWidth(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: TopicWidth}
	para := strings.Repeat("formula ", 30)

	wrapped := 0
	for _, line := range strings.Split(r.Render(para, ".md"), "\n") {
		if strings.Contains(line, "formula") {
			wrapped++
		}
	}
	assert.GreaterOrEqual(t, wrapped, 3)
}
