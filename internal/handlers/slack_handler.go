package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
	slackcmd "github.com/lmoroni/trellodue-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	tracker       contract.TrackerService
	due           contract.DueService
	messenger     contract.Messenger
	signingSecret string
	allowedUserID string
}

func New(tracker contract.TrackerService, due contract.DueService, messenger contract.Messenger, signingSecret, allowedUserID string) *SlackHandler {
	return &SlackHandler{
		tracker:       tracker,
		due:           due,
		messenger:     messenger,
		signingSecret: signingSecret,
		allowedUserID: allowedUserID,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Only the configured user may talk to the bot
	if s.UserID != h.allowedUserID {
		h.respond(w, &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You are not authorized to use this bot.",
		})
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd)

	h.respond(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdBoards:
		return h.handleBoards(ctx)
	case slackcmd.CmdOrgs:
		return h.handleOrgs(ctx, cmd)
	case slackcmd.CmdAllow:
		return h.handleAllow(cmd)
	case slackcmd.CmdBlock:
		return h.handleBlock(cmd)
	case slackcmd.CmdUpdate:
		return h.handleUpdate()
	case slackcmd.CmdSet:
		return h.handleSet(cmd)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleBoards(ctx context.Context) *slack.Msg {
	boards, err := h.tracker.FetchBoards(ctx)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to fetch boards: %v", err))
	}

	if len(boards) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No boards visible to this account.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         renderBoards(boards),
	}
}

func (h *SlackHandler) handleOrgs(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	// With a name argument, show that organization's boards instead
	if len(cmd.Args) > 0 {
		boards, err := h.tracker.FetchBoardsByOrg(ctx, cmd.Args[0])
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to fetch boards: %v", err))
		}
		if len(boards) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "This organization has no boards.",
			}
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         renderBoards(boards),
		}
	}

	orgs, err := h.tracker.FetchOrganizations(ctx)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to fetch organizations: %v", err))
	}

	if len(orgs) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No organizations visible to this account.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         renderOrgs(orgs),
	}
}

func (h *SlackHandler) handleAllow(cmd *slackcmd.Command) *slack.Msg {
	kind, ids, msg := h.parseResourceArgs(cmd, "allow")
	if msg != nil {
		return msg
	}

	var err error
	if kind == "boards" {
		err = h.tracker.WhitelistBoards(ids)
	} else {
		err = h.tracker.WhitelistOrganizations(ids)
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to track %s: %v", kind, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Now tracking %d %s. Run `/trello update` to pick up due dates.", len(ids), kind),
	}
}

func (h *SlackHandler) handleBlock(cmd *slackcmd.Command) *slack.Msg {
	kind, ids, msg := h.parseResourceArgs(cmd, "block")
	if msg != nil {
		return msg
	}

	var err error
	if kind == "boards" {
		err = h.tracker.BlacklistBoards(ids)
	} else {
		err = h.tracker.BlacklistOrganizations(ids)
	}
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to block %s: %v", kind, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Stopped tracking %d %s.", len(ids), kind),
	}
}

// parseResourceArgs validates "<boards|orgs> <id...>" arguments shared
// by allow and block.
func (h *SlackHandler) parseResourceArgs(cmd *slackcmd.Command, verb string) (kind string, ids []string, msg *slack.Msg) {
	if len(cmd.Args) < 2 {
		return "", nil, h.createErrorResponse(fmt.Sprintf("Use: `/trello %s boards|orgs <id...>`", verb))
	}

	kind = cmd.Args[0]
	if kind != "boards" && kind != "orgs" {
		return "", nil, h.createErrorResponse(fmt.Sprintf("Unknown resource %q. Use: `/trello %s boards|orgs <id...>`", kind, verb))
	}

	return kind, cmd.Args[1:], nil
}

func (h *SlackHandler) handleUpdate() *slack.Msg {
	// A full pass can take longer than Slack's response deadline, so
	// run it in the background and report through an editable status
	// message in the channel.
	go func() {
		status, err := h.messenger.Spawn("*Status*: Scanning for updates...")
		if err != nil {
			log.Printf("Failed to post status message: %v", err)
			if _, err := h.due.CheckDue(context.Background(), h.messenger); err != nil {
				log.Printf("Manual update failed: %v", err)
			}
			return
		}

		counter, err := h.due.CheckDue(context.Background(), h.messenger)
		if err != nil {
			log.Printf("Manual update failed: %v", err)
			status.Override(fmt.Sprintf("*Status*: Scan failed: %v", err))
		} else {
			status.Override("*Status*: Done. " + counter.Report())
		}
		if err := status.Flush(); err != nil {
			log.Printf("Failed to update status message: %v", err)
		}
	}()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🔍 Scanning tracked boards for due dates...",
	}
}

func (h *SlackHandler) handleSet(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.settingsHelpResponse()
	}

	switch cmd.Args[0] {
	case "interval":
		if len(cmd.Args) < 2 {
			return h.settingsHelpResponse()
		}
		minutes, err := strconv.ParseFloat(cmd.Args[1], 64)
		if err != nil {
			return h.settingsHelpResponse()
		}
		settings := h.due.SetUpdateInterval(minutes)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ Update interval set to %s.", settings.UpdateInterval),
		}

	case "notifications":
		if len(cmd.Args) < 2 {
			return h.settingsHelpResponse()
		}
		if cmd.Args[1] == "off" {
			h.due.SetNotificationInterval(0, true)
			h.due.StopRepeatingNotifications()
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "✅ Past-due notifications turned off.",
			}
		}
		hours, err := strconv.ParseFloat(cmd.Args[1], 64)
		if err != nil {
			return h.settingsHelpResponse()
		}
		settings := h.due.SetNotificationInterval(hours, false)
		h.due.StartRepeatingNotifications(h.messenger)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ Past-due notification interval set to %s.", settings.NotificationInterval),
		}

	case "quiet":
		h.due.SetQuiet(true)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "✅ Background scans will run quietly.",
		}

	case "verbose":
		h.due.SetQuiet(false)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "✅ Background scans will report in the channel.",
		}

	default:
		return h.settingsHelpResponse()
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	settings := h.due.Settings()
	scheduled, pending := h.due.Stats()

	var b strings.Builder
	b.WriteString("*Settings:*\n")
	fmt.Fprintf(&b, "• Update interval: %s\n", settings.UpdateInterval)
	if settings.NotificationsOff {
		b.WriteString("• Past-due notifications: off\n")
	} else {
		fmt.Fprintf(&b, "• Past-due notification interval: %s\n", settings.NotificationInterval)
	}
	if settings.Quiet {
		b.WriteString("• Background scans: quiet\n")
	} else {
		b.WriteString("• Background scans: verbose\n")
	}
	b.WriteString("*State:*\n")
	fmt.Fprintf(&b, "• %d reminders scheduled\n", scheduled)
	fmt.Fprintf(&b, "• %d past-due notifications pending", pending)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func renderBoards(boards []entity.Board) string {
	var tracked, blocked []entity.Board
	for _, b := range boards {
		if b.Blacklisted {
			blocked = append(blocked, b)
		} else {
			tracked = append(tracked, b)
		}
	}

	var b strings.Builder
	if len(tracked) > 0 {
		b.WriteString("*Tracked boards:*\n")
		for _, board := range tracked {
			fmt.Fprintf(&b, "• %s (`%s`)\n", board, board.ID)
		}
	}
	if len(blocked) > 0 {
		b.WriteString("*Blocked boards:*\n")
		for _, board := range blocked {
			fmt.Fprintf(&b, "• %s (`%s`)\n", board, board.ID)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderOrgs(orgs []entity.Organization) string {
	var tracked, blocked []entity.Organization
	for _, o := range orgs {
		if o.Blacklisted {
			blocked = append(blocked, o)
		} else {
			tracked = append(tracked, o)
		}
	}

	var b strings.Builder
	if len(tracked) > 0 {
		b.WriteString("*Tracked organizations:*\n")
		for _, org := range tracked {
			fmt.Fprintf(&b, "• %s (`%s`)\n", org, org.ID)
		}
	}
	if len(blocked) > 0 {
		b.WriteString("*Blocked organizations:*\n")
		for _, org := range blocked {
			fmt.Fprintf(&b, "• %s (`%s`)\n", org, org.ID)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (h *SlackHandler) settingsHelpResponse() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetSettingsHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.respond(w, h.createErrorResponse(message))
}
