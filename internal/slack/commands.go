package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdBoards CommandType = "boards"
	CmdOrgs   CommandType = "orgs"
	CmdAllow  CommandType = "allow"
	CmdBlock  CommandType = "block"
	CmdUpdate CommandType = "update"
	CmdSet    CommandType = "set"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "boards", "b":
		cmd.Type = CmdBoards
	case "orgs", "o":
		cmd.Type = CmdOrgs
	case "allow", "wl":
		cmd.Type = CmdAllow
	case "block", "bl":
		cmd.Type = CmdBlock
	case "update", "rescan":
		cmd.Type = CmdUpdate
	case "set":
		cmd.Type = CmdSet
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Tracking:*
• ` + "`/trello boards`" + ` - List boards, tracked and blocked
• ` + "`/trello orgs [name]`" + ` - List organizations, or the boards of one
• ` + "`/trello allow boards|orgs <id...>`" + ` - Track resources by ID
• ` + "`/trello block boards|orgs <id...>`" + ` - Stop tracking resources by ID

*Reminders:*
• ` + "`/trello update`" + ` - Rescan tracked boards for due dates now
• ` + "`/trello status`" + ` - Show current settings and scheduled reminders

*Settings:*
• ` + "`/trello set interval <minutes>`" + ` - Rescan cadence (0.3 to 1440)
• ` + "`/trello set notifications <hours|off>`" + ` - Past-due sweep cadence (0.1 to 24)
• ` + "`/trello set quiet`" + ` - Suppress background status messages
• ` + "`/trello set verbose`" + ` - Report background scans in the channel`
}

// GetSettingsHelpText is returned when a /trello set value does not
// parse; settings stay unchanged.
func GetSettingsHelpText() string {
	return `*Settings help*
• ` + "`/trello set interval <minutes>`" + ` - rescan cadence, clamped to [0.3, 1440]
• ` + "`/trello set notifications <hours|off>`" + ` - sweep cadence, clamped to [0.1, 24]
• ` + "`/trello set quiet`" + ` / ` + "`/trello set verbose`"
}
