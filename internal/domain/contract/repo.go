package contract

import "context"

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Whitelist() WhitelistRepo
}

// WhitelistRepo defines the contract for the tracked-resource
// whitelist. Adding an ID already present and removing an ID already
// absent are both no-ops.
type WhitelistRepo interface {
	AddBoard(boardID string) error
	RemoveBoard(boardID string) error
	AddOrganization(orgID string) error
	RemoveOrganization(orgID string) error
	BoardIDs() ([]string, error)
	OrganizationIDs() ([]string, error)
}
