// Package trello implements a thin client for the Trello v1 REST API.
package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

const defaultBaseURL = "https://api.trello.com/1"

type Client struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	apiToken string
}

// New creates a Trello client using key/token query authentication.
func New(apiKey, apiToken string) *Client {
	return &Client{
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  defaultBaseURL,
		apiKey:   apiKey,
		apiToken: apiToken,
	}
}

// NewWithBaseURL is used by tests to point the client at a local server.
func NewWithBaseURL(apiKey, apiToken, baseURL string) *Client {
	c := New(apiKey, apiToken)
	c.baseURL = baseURL
	return c
}

var _ contract.TrelloAPI = (*Client)(nil)

type organizationPayload struct {
	ID   string `json:"id"`
	Name string `json:"displayName"`
	URL  string `json:"url"`
}

type boardPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	OrganizationID string `json:"idOrganization"`
}

type listPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BoardID string `json:"idBoard"`
}

type cardPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Due         string `json:"due"`
	DueComplete bool   `json:"dueComplete"`
}

func (c *Client) FetchOrganizations(ctx context.Context) ([]entity.Organization, error) {
	var payload []organizationPayload
	if err := c.get(ctx, "/members/me/organizations", &payload); err != nil {
		return nil, err
	}

	orgs := make([]entity.Organization, 0, len(payload))
	for _, o := range payload {
		orgs = append(orgs, entity.Organization{ID: o.ID, Name: o.Name, URL: o.URL})
	}
	return orgs, nil
}

func (c *Client) FetchBoards(ctx context.Context) ([]entity.Board, error) {
	return c.fetchBoards(ctx, "/members/me/boards")
}

func (c *Client) FetchOrgBoards(ctx context.Context, orgID string) ([]entity.Board, error) {
	return c.fetchBoards(ctx, fmt.Sprintf("/organizations/%s/boards", orgID))
}

func (c *Client) fetchBoards(ctx context.Context, path string) ([]entity.Board, error) {
	var payload []boardPayload
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	boards := make([]entity.Board, 0, len(payload))
	for _, b := range payload {
		boards = append(boards, entity.Board{
			ID:             b.ID,
			Name:           b.Name,
			URL:            b.URL,
			OrganizationID: b.OrganizationID,
		})
	}
	return boards, nil
}

func (c *Client) FetchLists(ctx context.Context, boardID string) ([]entity.List, error) {
	var payload []listPayload
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/lists", boardID), &payload); err != nil {
		return nil, err
	}

	lists := make([]entity.List, 0, len(payload))
	for _, l := range payload {
		lists = append(lists, entity.List{ID: l.ID, Name: l.Name, BoardID: l.BoardID})
	}
	return lists, nil
}

// FetchCards returns the cards of a board. The due field, when
// present, is parsed into a timezone-aware instant so nothing past
// this package ever sees the wire format.
func (c *Client) FetchCards(ctx context.Context, boardID string) ([]entity.Card, error) {
	var payload []cardPayload
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/cards", boardID), &payload); err != nil {
		return nil, err
	}

	cards := make([]entity.Card, 0, len(payload))
	for _, p := range payload {
		card := entity.Card{
			ID:          p.ID,
			Name:        p.Name,
			URL:         p.URL,
			DueComplete: p.DueComplete,
		}
		if p.Due != "" {
			due, err := time.Parse(time.RFC3339, p.Due)
			if err != nil {
				return nil, fmt.Errorf("failed to parse due date %q of card %s: %w", p.Due, p.ID, err)
			}
			card.Due = &due
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("token", c.apiToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("trello API returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Trello response: %w", err)
	}
	return nil
}
