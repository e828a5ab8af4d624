package contract

import (
	"context"

	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

// TrelloAPI is the raw Trello data source. Entities come back with
// the Blacklisted flag unset; deriving it from the whitelist is the
// tracker service's job.
type TrelloAPI interface {
	FetchOrganizations(ctx context.Context) ([]entity.Organization, error)
	FetchBoards(ctx context.Context) ([]entity.Board, error)
	FetchOrgBoards(ctx context.Context, orgID string) ([]entity.Board, error)
	FetchLists(ctx context.Context, boardID string) ([]entity.List, error)
	FetchCards(ctx context.Context, boardID string) ([]entity.Card, error)
}
