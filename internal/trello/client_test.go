package trello

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, path, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, path, r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "test-token", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func TestFetchOrganizations(t *testing.T) {
	srv := newTestServer(t, "/members/me/organizations",
		`[{"id":"o1","displayName":"Personal","url":"https://trello.com/personal"}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	orgs, err := client.FetchOrganizations(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "o1", orgs[0].ID)
	assert.Equal(t, "Personal", orgs[0].Name)
	assert.False(t, orgs[0].Blacklisted)
}

func TestFetchBoards(t *testing.T) {
	srv := newTestServer(t, "/members/me/boards",
		`[{"id":"b1","name":"Chores","url":"https://trello.com/b/b1","idOrganization":"o1"},
		  {"id":"b2","name":"Work","url":"https://trello.com/b/b2","idOrganization":""}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	boards, err := client.FetchBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "b1", boards[0].ID)
	assert.Equal(t, "o1", boards[0].OrganizationID)
	assert.Equal(t, "Work", boards[1].Name)
}

func TestFetchOrgBoards(t *testing.T) {
	srv := newTestServer(t, "/organizations/o1/boards",
		`[{"id":"b1","name":"Chores","url":"https://trello.com/b/b1","idOrganization":"o1"}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	boards, err := client.FetchOrgBoards(context.Background(), "o1")
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "b1", boards[0].ID)
}

func TestFetchLists(t *testing.T) {
	srv := newTestServer(t, "/boards/b1/lists",
		`[{"id":"l1","name":"Doing","idBoard":"b1"}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	lists, err := client.FetchLists(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Doing", lists[0].Name)
	assert.Equal(t, "b1", lists[0].BoardID)
}

func TestFetchCards(t *testing.T) {
	srv := newTestServer(t, "/boards/b1/cards",
		`[{"id":"c1","name":"Pay rent","url":"https://trello.com/c/c1","due":"2026-09-01T12:00:00.000Z","dueComplete":false},
		  {"id":"c2","name":"No due","url":"https://trello.com/c/c2","due":null,"dueComplete":true}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	cards, err := client.FetchCards(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	require.NotNil(t, cards[0].Due)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), cards[0].Due.UTC())
	assert.False(t, cards[0].DueComplete)

	assert.Nil(t, cards[1].Due)
	assert.True(t, cards[1].DueComplete)
}

func TestFetchCards_InvalidDue(t *testing.T) {
	srv := newTestServer(t, "/boards/b1/cards",
		`[{"id":"c1","name":"Bad","url":"u","due":"not-a-date","dueComplete":false}]`)
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	_, err := client.FetchCards(context.Background(), "b1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse due date")
}

func TestGet_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "invalid token")
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-key", "test-token", srv.URL)

	_, err := client.FetchBoards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200 status")
	assert.Contains(t, err.Error(), "invalid token")
}
