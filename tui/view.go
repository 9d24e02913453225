package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/sll-cli/sll/constant"
	"github.com/sll-cli/sll/render"
	"github.com/sll-cli/sll/style"
	"github.com/sll-cli/sll/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	title := style.Title(constant.App)
	if b.state == editState {
		title = style.Tag(style.Base, style.Peach)("edit head")
	}

	chainWidth := 0
	if b.width > 0 {
		chainWidth = util.Max(b.width-4, 10)
	}

	lines := []string{
		title + " " + style.Faint(util.Quantify(b.list.Len(), "node", "nodes")),
		"",
		render.Chain(b.list, chainWidth),
		"",
		b.inputC.View(),
		"",
		b.viewStatus(),
		"",
		b.helpC.View(b.keymap),
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) viewStatus() string {
	if b.status == "" {
		return ""
	}

	status := style.Fg(style.SuccessColor)(b.status)
	if b.width > 0 {
		status = wrap.String(status, util.Max(b.width-4, 10))
	}
	return status
}
