package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// textDelegate renders one-line text items with the shared item
// styles, highlighting the cursor row. For plain lists (help screen)
// that need no per-item state.
type textDelegate struct{}

func NewTextDelegate() textDelegate {
	return textDelegate{}
}

func (d textDelegate) Height() int                             { return 1 }
func (d textDelegate) Spacing() int                            { return 0 }
func (d textDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d textDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	text := listItem.FilterValue()

	if index == m.Index() {
		fmt.Fprint(w, HighlightedItemStyle.Render(text))
		return
	}

	fmt.Fprint(w, ItemStyle.Render(text))
}
