package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "boards",
			text:     "boards",
			wantType: CmdBoards,
		},
		{
			name:     "boards alias",
			text:     "b",
			wantType: CmdBoards,
		},
		{
			name:     "orgs with name",
			text:     "orgs myteam",
			wantType: CmdOrgs,
			wantArgs: []string{"myteam"},
		},
		{
			name:     "orgs alias",
			text:     "o",
			wantType: CmdOrgs,
		},
		{
			name:     "allow boards with ids",
			text:     "allow boards abc123 def456",
			wantType: CmdAllow,
			wantArgs: []string{"boards", "abc123", "def456"},
		},
		{
			name:     "allow alias",
			text:     "wl orgs abc123",
			wantType: CmdAllow,
			wantArgs: []string{"orgs", "abc123"},
		},
		{
			name:     "block boards",
			text:     "block boards abc123",
			wantType: CmdBlock,
			wantArgs: []string{"boards", "abc123"},
		},
		{
			name:     "block alias",
			text:     "bl boards abc123",
			wantType: CmdBlock,
			wantArgs: []string{"boards", "abc123"},
		},
		{
			name:     "update",
			text:     "update",
			wantType: CmdUpdate,
		},
		{
			name:     "update alias",
			text:     "rescan",
			wantType: CmdUpdate,
		},
		{
			name:     "set interval",
			text:     "set interval 15",
			wantType: CmdSet,
			wantArgs: []string{"interval", "15"},
		},
		{
			name:     "status",
			text:     "status",
			wantType: CmdStatus,
		},
		{
			name:     "help",
			text:     "help",
			wantType: CmdHelp,
		},
		{
			name:     "empty text defaults to help",
			text:     "",
			wantType: CmdHelp,
		},
		{
			name:     "whitespace only defaults to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "unknown command",
			text:    "bogus",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown command")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			if tt.wantArgs == nil {
				assert.Empty(t, cmd.Args)
			} else {
				assert.Equal(t, tt.wantArgs, cmd.Args)
			}
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/trello boards")
	assert.Contains(t, help, "/trello orgs")
	assert.Contains(t, help, "/trello allow")
	assert.Contains(t, help, "/trello block")
	assert.Contains(t, help, "/trello update")
	assert.Contains(t, help, "/trello set interval")
	assert.Contains(t, help, "/trello status")
}

func TestGetSettingsHelpText(t *testing.T) {
	help := GetSettingsHelpText()

	assert.Contains(t, help, "set interval")
	assert.Contains(t, help, "set notifications")
	assert.Contains(t, help, "set quiet")
}
