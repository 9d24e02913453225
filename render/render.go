// Package render draws list chains for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/sll-cli/sll/key"
	"github.com/sll-cli/sll/list"
	"github.com/sll-cli/sll/style"
	"github.com/spf13/viper"
)

// labelWidth caps how much of a single value is shown inside a node.
const labelWidth = 24

// Terminator marks the end of a chain.
const Terminator = "nil"

var (
	headStyle = style.New().Bold(true).Foreground(style.HeadColor)
	nodeStyle = style.New().Foreground(style.NodeColor)
	linkStyle = style.New().Foreground(style.LinkColor)
)

// Chain draws l head first, e.g. "[3] -> [2] -> [1] -> nil".
// At most render.limit nodes are drawn and the result is wrapped to width
// when width is positive.
func Chain[T any](l *list.List[T], width int) string {
	limit := viper.GetInt(key.RenderLimit)
	arrow := linkStyle.Render(Arrow())

	var parts []string
	it := l.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next().Get()
		if !ok {
			break
		}

		if limit > 0 && i == limit {
			rest := l.Len() - limit
			parts = append(parts, linkStyle.Render(fmt.Sprintf("… +%d", rest)))
			break
		}

		s := nodeStyle
		if i == 0 {
			s = headStyle
		}
		parts = append(parts, s.Render(Node(v)))
	}
	parts = append(parts, linkStyle.Render(Terminator))

	out := strings.Join(parts, " "+arrow+" ")
	if width > 0 {
		out = wrap.String(wordwrap.String(out, width), width)
	}
	return out
}

// Node draws a single value as a bracketed label, shortened when too long.
func Node(v any) string {
	return "[" + truncate.StringWithTail(fmt.Sprint(v), labelWidth, "…") + "]"
}

// Arrow returns the configured link glyph.
func Arrow() string {
	if a := viper.GetString(key.RenderArrow); a != "" {
		return a
	}
	return "->"
}
