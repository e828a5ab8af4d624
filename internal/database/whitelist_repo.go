package database

import (
	"fmt"

	"github.com/lmoroni/trellodue-bot/internal/domain"
	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
)

type whitelistRepository struct {
	db dbConn
}

func newWhitelistRepository(db dbConn) contract.WhitelistRepo {
	return &whitelistRepository{db: db}
}

func (r *whitelistRepository) AddBoard(boardID string) error {
	return r.add(domain.KindBoard, boardID)
}

func (r *whitelistRepository) RemoveBoard(boardID string) error {
	return r.remove(domain.KindBoard, boardID)
}

func (r *whitelistRepository) AddOrganization(orgID string) error {
	return r.add(domain.KindOrganization, orgID)
}

func (r *whitelistRepository) RemoveOrganization(orgID string) error {
	return r.remove(domain.KindOrganization, orgID)
}

func (r *whitelistRepository) BoardIDs() ([]string, error) {
	return r.list(domain.KindBoard)
}

func (r *whitelistRepository) OrganizationIDs() ([]string, error) {
	return r.list(domain.KindOrganization)
}

func (r *whitelistRepository) add(kind, resourceID string) error {
	query := `
		INSERT OR IGNORE INTO whitelist (kind, resource_id)
		VALUES (?, ?)
	`

	if _, err := r.db.Exec(query, kind, resourceID); err != nil {
		return fmt.Errorf("failed to whitelist %s %s: %w", kind, resourceID, err)
	}
	return nil
}

func (r *whitelistRepository) remove(kind, resourceID string) error {
	query := `
		DELETE FROM whitelist
		WHERE kind = ? AND resource_id = ?
	`

	if _, err := r.db.Exec(query, kind, resourceID); err != nil {
		return fmt.Errorf("failed to remove %s %s from whitelist: %w", kind, resourceID, err)
	}
	return nil
}

func (r *whitelistRepository) list(kind string) ([]string, error) {
	query := `
		SELECT resource_id
		FROM whitelist
		WHERE kind = ?
		ORDER BY created_at, resource_id
	`

	rows, err := r.db.Query(query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelisted %ss: %w", kind, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan whitelist entry: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
