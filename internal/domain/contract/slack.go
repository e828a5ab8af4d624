package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel and returns the
	// channel and timestamp of the posted message
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously posted message identified by
	// channel and timestamp
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
}

// Messenger sends notification text to the chat channel. Spawn opens
// a separate progress message that can be edited in place.
type Messenger interface {
	Send(text string) error
	Spawn(text string) (ProgressMessage, error)
}

// ProgressMessage is a posted message that supports in-place edits.
// Edits are buffered; Flush forces any buffered text out.
type ProgressMessage interface {
	Append(text string) error
	Override(text string) error
	Flush() error
}
