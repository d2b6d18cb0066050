package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"findbar/internal/domain"
	"findbar/internal/ui/views"
)

// ovCommand shows a document in the ov pager. It implements tea.ExecCommand
// so Bubble Tea releases the terminal while ov runs.
type ovCommand struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (c *ovCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *ovCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *ovCommand) SetStderr(w io.Writer) { c.stderr = w }

func (c *ovCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// openInPager returns a command that pages the item's details and reports
// back with a pagerDoneMsg
func openInPager(item domain.Item) tea.Cmd {
	cmd := &ovCommand{content: ItemDocument(item)}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return pagerDoneMsg{itemID: item.ID, err: err}
	})
}

// ItemDocument renders an item as plain text for paging
func ItemDocument(item domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", item.Title, strings.Repeat("=", len([]rune(item.Title))))

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-10s %s\n", name+":", value)
		}
	}
	field("Type", string(item.Category))
	field("ID", item.ID)
	field("Subtitle", item.Subtitle)
	if item.Presence != domain.PresenceNone {
		presence := string(item.Presence)
		if item.PresenceAge != "" {
			presence += " (" + item.PresenceAge + ")"
		}
		field("Presence", presence)
	}
	field("Location", item.Location)
	field("Edited", item.EditedAgo)
	if item.FileCount > 0 {
		field("Files", fmt.Sprintf("%d", item.FileCount))
	}
	if detail := views.DetailLine(item); detail != "" && detail != item.Subtitle {
		fmt.Fprintf(&b, "\n%s\n", detail)
	}
	return b.String()
}
