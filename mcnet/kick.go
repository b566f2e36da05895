package mcnet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TheLukeGuy/minestodon/text"
)

// IssueReportURL is printed in the footer of every error-kick message.
const IssueReportURL = "https://github.com/TheLukeGuy/minestodon/issues"

// ErrKickNotAllowedInState is returned when SendKick is called outside the
// Login or Play states.
var ErrKickNotAllowedInState = errors.New("mcnet: kicking is not allowed in the current state")

// SendKick disconnects the connection with reason, using the packet shape
// appropriate to the current state.
func (c *Connection) SendKick(reason text.Text) error {
	switch c.state {
	case StateLogin:
		if err := c.sendLoginDisconnect(reason); err != nil {
			return err
		}
	case StatePlay:
		if err := c.sendPlayDisconnect(reason); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrKickNotAllowedInState, c.state)
	}
	return c.Close()
}

// SendErrorKick formats err's wrapped-error chain into a tri-line message
// and kicks the connection with it.
func (c *Connection) SendErrorKick(err error) error {
	reason := errorKickText(err)
	return c.SendKick(reason)
}

func errorKickText(err error) text.Text {
	header := text.Plain("Minestodon Error").
		WithColor(text.NamedColorValue(text.Red)).
		WithUnderlined(true)
	body := text.Plain(strings.Join(errorChain(err), "\n")).
		WithColor(text.NamedColorValue(text.Gray))
	footer := text.Plain("Please report this at " + IssueReportURL).
		WithColor(text.NamedColorValue(text.Gold))

	return header.PushSequential(text.Plain("\n")).
		PushSequential(body).
		PushSequential(text.Plain("\n")).
		PushSequential(footer)
}

// errorChain trims err's wrapped-error causes into one line each, outermost
// first.
func errorChain(err error) []string {
	var lines []string
	for err != nil {
		lines = append(lines, strings.TrimSpace(topLevelMessage(err)))
		err = errors.Unwrap(err)
	}
	return lines
}

// topLevelMessage returns err's message with any wrapped cause's message
// stripped off, since that cause is reported on its own line.
func topLevelMessage(err error) string {
	msg := err.Error()
	if cause := errors.Unwrap(err); cause != nil {
		if idx := strings.LastIndex(msg, cause.Error()); idx > 0 {
			return strings.TrimSuffix(msg[:idx], ": ")
		}
	}
	return msg
}
