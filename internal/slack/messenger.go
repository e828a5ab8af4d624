package slack

import (
	"fmt"

	api "github.com/slack-go/slack"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
)

// defaultBufCap is how many edits a progress message accumulates
// before pushing them to Slack in one update call.
const defaultBufCap = 8

// Messenger posts notifications to one Slack channel and spawns
// editable progress messages for long-running passes.
type Messenger struct {
	client    contract.SlackClient
	channelID string
}

func NewMessenger(client contract.SlackClient, channelID string) *Messenger {
	return &Messenger{client: client, channelID: channelID}
}

var _ contract.Messenger = (*Messenger)(nil)

func (m *Messenger) Send(text string) error {
	_, _, err := m.client.PostMessage(m.channelID, api.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}

// Spawn posts text as a new message and returns a handle that edits
// it in place.
func (m *Messenger) Spawn(text string) (contract.ProgressMessage, error) {
	_, timestamp, err := m.client.PostMessage(m.channelID, api.MsgOptionText(text, false))
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}
	return &progressMessage{
		client:    m.client,
		channelID: m.channelID,
		timestamp: timestamp,
		text:      text,
		bufCap:    defaultBufCap,
	}, nil
}

type progressMessage struct {
	client    contract.SlackClient
	channelID string
	timestamp string
	text      string
	bufCap    int
	buffered  int
}

func (p *progressMessage) Append(text string) error {
	p.text += text
	p.buffered++
	if p.buffered >= p.bufCap {
		return p.Flush()
	}
	return nil
}

func (p *progressMessage) Override(text string) error {
	p.text = text
	p.buffered++
	if p.buffered >= p.bufCap {
		return p.Flush()
	}
	return nil
}

func (p *progressMessage) Flush() error {
	if p.buffered == 0 {
		return nil
	}
	_, _, _, err := p.client.UpdateMessage(p.channelID, p.timestamp, api.MsgOptionText(p.text, false))
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	p.buffered = 0
	return nil
}
