package entity

import (
	"fmt"
	"time"
)

// Organization is a Trello organization (workspace).
type Organization struct {
	ID          string
	Name        string
	URL         string
	Blacklisted bool
}

// String renders the organization as a Slack mrkdwn link.
func (o Organization) String() string {
	return fmt.Sprintf("<%s|%s>", o.URL, o.Name)
}

// Board is a Trello board. Blacklisted is derived state: true unless
// the board ID is present in the whitelist.
type Board struct {
	ID             string
	Name           string
	URL            string
	OrganizationID string
	Blacklisted    bool
}

// String renders the board as a Slack mrkdwn link.
func (b Board) String() string {
	return fmt.Sprintf("<%s|%s>", b.URL, b.Name)
}

// List is a Trello list inside a board.
type List struct {
	ID      string
	Name    string
	BoardID string
}

func (l List) String() string {
	return l.Name
}

// Card is an immutable snapshot of a Trello card as of one fetch.
// Due is nil when the card has no due date; when present it is a
// timezone-aware instant.
type Card struct {
	ID          string
	Name        string
	URL         string
	Due         *time.Time
	DueComplete bool
}

// String renders the card as a Slack mrkdwn link with a checkbox
// reflecting completion.
func (c Card) String() string {
	if c.DueComplete {
		return fmt.Sprintf("☑ <%s|%s>", c.URL, c.Name)
	}
	return fmt.Sprintf("☐ <%s|%s>", c.URL, c.Name)
}
