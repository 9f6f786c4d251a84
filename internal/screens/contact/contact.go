package contact

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/signup"
	"github.com/lingoquest/lingo/internal/ui/components"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

var fields = []signup.Field{signup.FieldName, signup.FieldEmail, signup.FieldPassword}

// ContactScreen is the signup form page.
type ContactScreen struct {
	inputs map[signup.Field]*components.TextInput

	// focus indexes fields; len(fields) is the Submit control.
	focus int

	result *signup.Result
	logger *zap.Logger
}

var (
	_ screen.Screen          = (*ContactScreen)(nil)
	_ screen.KeyHintProvider = (*ContactScreen)(nil)
)

// New creates the signup form.
func New(logger *zap.Logger) *ContactScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	name := components.NewTextInput("Name", "Your name", false, 64)
	email := components.NewTextInput("Email", "you@example.com", false, 128)
	password := components.NewTextInput("Password", "At least 8 characters", true, 128)

	return &ContactScreen{
		inputs: map[signup.Field]*components.TextInput{
			signup.FieldName:     &name,
			signup.FieldEmail:    &email,
			signup.FieldPassword: &password,
		},
		logger: logger,
	}
}

func (c *ContactScreen) Init() tea.Cmd {
	return c.setFocus(0)
}

func (c *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return c, c.setFocus(c.focus + 1)
	case "shift+tab", "up":
		return c, c.setFocus(c.focus - 1)
	case "ctrl+s":
		c.submit()
		return c, nil
	case "enter":
		if c.focus == len(fields) {
			c.submit()
			return c, nil
		}
		return c, c.setFocus(c.focus + 1)
	}

	if c.focus < len(fields) {
		in := c.inputs[fields[c.focus]]
		updated, cmd := in.Update(msg)
		*in = updated
		return c, cmd
	}
	return c, nil
}

func (c *ContactScreen) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i > len(fields) {
		i = len(fields)
	}
	c.focus = i

	var cmd tea.Cmd
	for j, f := range fields {
		if j == i {
			cmd = c.inputs[f].Focus()
		} else {
			c.inputs[f].Blur()
		}
	}
	return cmd
}

// Form returns the current field contents.
func (c *ContactScreen) Form() signup.Form {
	return signup.Form{
		Name:     c.inputs[signup.FieldName].Value(),
		Email:    c.inputs[signup.FieldEmail].Value(),
		Password: c.inputs[signup.FieldPassword].Value(),
	}
}

// Result returns the outcome of the last submit, or nil before the first.
func (c *ContactScreen) Result() *signup.Result {
	return c.result
}

// FieldError returns the message currently shown under f.
func (c *ContactScreen) FieldError(f signup.Field) string {
	return c.inputs[f].Error()
}

// submit clears every error slot before validating, so stale messages
// never survive a resubmit.
func (c *ContactScreen) submit() {
	for _, f := range fields {
		c.inputs[f].SetError("")
	}

	res := signup.Validate(c.Form())
	for f, msg := range res.Errors {
		c.inputs[f].SetError(msg)
	}
	c.result = &res

	if res.Valid {
		c.logger.Info("signup form submitted", zap.String("email", strings.TrimSpace(c.Form().Email)))
	}
}

func (c *ContactScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Sign up"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Create an account to save your progress"))
	b.WriteString("\n\n")

	for _, f := range fields {
		b.WriteString(c.inputs[f].View())
		b.WriteString("\n\n")
	}

	b.WriteString(components.NewButton("Submit", c.focus == len(fields), nil).View())

	if c.result != nil {
		style := theme.Incorrect
		if c.result.Class == signup.ClassSuccess {
			style = theme.Correct
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(c.result.Feedback))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (c *ContactScreen) Title() string {
	return "Contact"
}

// KeyHints implements screen.KeyHintProvider.
func (c *ContactScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}
