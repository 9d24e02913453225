package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func typeText(b *statefulBubble, s string) {
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(b *statefulBubble, t tea.KeyType) tea.Cmd {
	_, cmd := b.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestBubble(t *testing.T) {
	Convey("Given a seeded bubble", t, func() {
		b := newBubble(&Options{Seed: []string{"a", "b"}})
		So(b.list.String(), ShouldEqual, "[b a]")
		So(b.state, ShouldEqual, pushState)

		Convey("Enter pushes the typed value", func() {
			typeText(b, "c")
			press(b, tea.KeyEnter)
			So(b.list.String(), ShouldEqual, "[c b a]")
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.status, ShouldEqual, `pushed "c"`)
		})

		Convey("Enter with blank input pushes nothing", func() {
			press(b, tea.KeyEnter)
			So(b.list.Len(), ShouldEqual, 2)
		})

		Convey("ctrl+p pops until empty", func() {
			press(b, tea.KeyCtrlP)
			So(b.status, ShouldEqual, `popped "b"`)
			press(b, tea.KeyCtrlP)
			press(b, tea.KeyCtrlP)
			So(b.status, ShouldEqual, "list is empty")
			So(b.list.IsEmpty(), ShouldBeTrue)
		})

		Convey("ctrl+e edits the head in place", func() {
			press(b, tea.KeyCtrlE)
			So(b.state, ShouldEqual, editState)
			So(b.inputC.Value(), ShouldEqual, "b")

			b.inputC.SetValue("z")
			press(b, tea.KeyEnter)
			So(b.state, ShouldEqual, pushState)
			So(b.list.String(), ShouldEqual, "[z a]")
			So(b.list.Len(), ShouldEqual, 2)
		})

		Convey("esc leaves edit mode without writing", func() {
			press(b, tea.KeyCtrlE)
			b.inputC.SetValue("z")
			cmd := press(b, tea.KeyEsc)
			So(cmd, ShouldBeNil)
			So(b.state, ShouldEqual, pushState)
			So(b.list.String(), ShouldEqual, "[b a]")
		})

		Convey("ctrl+u uppercases every value", func() {
			press(b, tea.KeyCtrlU)
			So(b.list.String(), ShouldEqual, "[B A]")
		})

		Convey("ctrl+x drops the list", func() {
			press(b, tea.KeyCtrlX)
			So(b.list.IsEmpty(), ShouldBeTrue)
			So(b.status, ShouldEqual, "dropped 2 values")
		})

		Convey("The input follows the window width up to a cap", func() {
			b.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
			So(b.inputC.Width, ShouldEqual, 40-len(b.inputC.Prompt)-4)

			b.Update(tea.WindowSizeMsg{Width: 400, Height: 20})
			So(b.inputC.Width, ShouldEqual, maxInputWidth)

			b.Update(tea.WindowSizeMsg{Width: 5, Height: 20})
			So(b.inputC.Width, ShouldEqual, 10)
		})

		Convey("The view shows the chain", func() {
			So(b.View(), ShouldContainSubstring, "[b] -> [a] -> nil")
		})

		Convey("esc at the top level quits", func() {
			So(press(b, tea.KeyEsc), ShouldNotBeNil)
		})
	})

	Convey("An empty bubble refuses to edit", t, func() {
		b := newBubble(nil)
		press(b, tea.KeyCtrlE)
		So(b.state, ShouldEqual, pushState)
		So(b.status, ShouldEqual, "list is empty")
	})
}
