package service

import (
	"context"
	"fmt"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

// trackerService joins raw Trello data with the persisted whitelist.
// Everything it yields carries a resolved Blacklisted flag: a resource
// is blacklisted unless its ID was explicitly whitelisted.
type trackerService struct {
	dm     contract.DataManager
	trello contract.TrelloAPI
}

func newTracker(dm contract.DataManager, trello contract.TrelloAPI) *trackerService {
	return &trackerService{
		dm:     dm,
		trello: trello,
	}
}

func (s *trackerService) FetchOrganizations(ctx context.Context) ([]entity.Organization, error) {
	orgs, err := s.trello.FetchOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	allowed, err := s.allowedSet(s.dm.Whitelist().OrganizationIDs)
	if err != nil {
		return nil, err
	}

	for i := range orgs {
		orgs[i].Blacklisted = !allowed[orgs[i].ID]
	}
	return orgs, nil
}

func (s *trackerService) FetchBoards(ctx context.Context) ([]entity.Board, error) {
	boards, err := s.trello.FetchBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	return s.resolveBoards(boards)
}

// FetchBoardsByOrg lists the boards of one organization, resolved by
// ID or by name.
func (s *trackerService) FetchBoardsByOrg(ctx context.Context, org string) ([]entity.Board, error) {
	orgs, err := s.trello.FetchOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	orgID := ""
	for _, o := range orgs {
		if o.ID == org || o.Name == org {
			orgID = o.ID
			break
		}
	}
	if orgID == "" {
		return nil, fmt.Errorf("organization %q not found", org)
	}

	boards, err := s.trello.FetchOrgBoards(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards of organization %s: %w", orgID, err)
	}
	return s.resolveBoards(boards)
}

func (s *trackerService) FetchCards(ctx context.Context, boardID string) ([]entity.Card, error) {
	cards, err := s.trello.FetchCards(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards of board %s: %w", boardID, err)
	}
	return cards, nil
}

func (s *trackerService) WhitelistBoards(boardIDs []string) error {
	return s.each(boardIDs, s.dm.Whitelist().AddBoard)
}

func (s *trackerService) BlacklistBoards(boardIDs []string) error {
	return s.each(boardIDs, s.dm.Whitelist().RemoveBoard)
}

func (s *trackerService) WhitelistOrganizations(orgIDs []string) error {
	return s.each(orgIDs, s.dm.Whitelist().AddOrganization)
}

func (s *trackerService) BlacklistOrganizations(orgIDs []string) error {
	return s.each(orgIDs, s.dm.Whitelist().RemoveOrganization)
}

func (s *trackerService) resolveBoards(boards []entity.Board) ([]entity.Board, error) {
	allowed, err := s.allowedSet(s.dm.Whitelist().BoardIDs)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		boards[i].Blacklisted = !allowed[boards[i].ID]
	}
	return boards, nil
}

func (s *trackerService) allowedSet(list func() ([]string, error)) (map[string]bool, error) {
	ids, err := list()
	if err != nil {
		return nil, fmt.Errorf("failed to load whitelist: %w", err)
	}

	allowed := make(map[string]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	return allowed, nil
}

func (s *trackerService) each(ids []string, fn func(string) error) error {
	for _, id := range ids {
		if err := fn(id); err != nil {
			return err
		}
	}
	return nil
}
