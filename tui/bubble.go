package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sll-cli/sll/key"
	"github.com/sll-cli/sll/list"
	"github.com/sll-cli/sll/log"
	"github.com/sll-cli/sll/style"
	"github.com/sll-cli/sll/util"
	"github.com/spf13/viper"
)

const editPrompt = "set> "

// maxInputWidth keeps the input box readable on wide terminals.
const maxInputWidth = 64

// statefulBubble holds the list being shown together with the input and navigation state.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	inputC textinput.Model
	helpC  help.Model

	list   *list.List[string]
	status string

	width, height int
}

func newBubble(options *Options) *statefulBubble {
	b := &statefulBubble{
		keymap: newStatefulKeymap(),
		list:   list.New[string](),
		helpC:  help.New(),
	}

	b.inputC = textinput.New()
	b.inputC.Prompt = viper.GetString(key.TUIPrompt)
	b.inputC.PromptStyle = style.New().Foreground(style.AccentColor)
	b.inputC.Placeholder = "value"
	b.inputC.Focus()

	if options != nil {
		for _, v := range options.Seed {
			b.list.Push(v)
		}
	}

	b.setState(pushState)
	return b
}

// setState switches the workflow and the keymap together.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)

	switch s {
	case pushState:
		b.inputC.Prompt = viper.GetString(key.TUIPrompt)
	case editState:
		b.inputC.Prompt = editPrompt
	}
}

// newState moves to s and remembers where it came from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the state on top of the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	b.width, b.height = width, height
	b.inputC.Width = util.Min(util.Max(width-len(b.inputC.Prompt)-4, 10), maxInputWidth)
	b.helpC.Width = width
}

func (b *statefulBubble) report(op, status string) {
	b.status = status
	log.With(log.Fields{"op": op, "len": b.list.Len()}).Debug(status)
}
