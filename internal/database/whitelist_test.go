package database

import (
	"context"
	"errors"
	"testing"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitelistRepository_AddAndListBoards(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWhitelistRepository(db.conn)

	err := repo.AddBoard("board-1")
	require.NoError(t, err, "Failed to whitelist board")

	err = repo.AddBoard("board-2")
	require.NoError(t, err, "Failed to whitelist board")

	ids, err := repo.BoardIDs()
	require.NoError(t, err, "Failed to list whitelisted boards")
	assert.Equal(t, []string{"board-1", "board-2"}, ids)
}

func TestWhitelistRepository_AddIsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWhitelistRepository(db.conn)

	err := repo.AddBoard("board-1")
	require.NoError(t, err)

	// Adding the same board again should not fail or duplicate
	err = repo.AddBoard("board-1")
	require.NoError(t, err, "Re-adding an existing board should not fail")

	ids, err := repo.BoardIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"board-1"}, ids)
}

func TestWhitelistRepository_RemoveBoard(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWhitelistRepository(db.conn)

	require.NoError(t, repo.AddBoard("board-1"))
	require.NoError(t, repo.AddBoard("board-2"))

	err := repo.RemoveBoard("board-1")
	require.NoError(t, err, "Failed to remove board from whitelist")

	ids, err := repo.BoardIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"board-2"}, ids)

	// Removing an absent board is a no-op
	err = repo.RemoveBoard("board-1")
	require.NoError(t, err, "Removing an absent board should not fail")
}

func TestWhitelistRepository_OrganizationsAreSeparateFromBoards(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWhitelistRepository(db.conn)

	require.NoError(t, repo.AddBoard("shared-id"))
	require.NoError(t, repo.AddOrganization("shared-id"))
	require.NoError(t, repo.AddOrganization("org-1"))

	boards, err := repo.BoardIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"shared-id"}, boards)

	orgs, err := repo.OrganizationIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"shared-id", "org-1"}, orgs)

	// Removing the board must not touch the organization entry
	require.NoError(t, repo.RemoveBoard("shared-id"))

	orgs, err = repo.OrganizationIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"shared-id", "org-1"}, orgs)
}

func TestWhitelistRepository_EmptyList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWhitelistRepository(db.conn)

	ids, err := repo.BoardIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Whitelist().AddBoard("board-1"); err != nil {
			return err
		}
		return tx.Whitelist().AddOrganization("org-1")
	})
	require.NoError(t, err, "Transaction should commit")

	ids, err := dm.Whitelist().BoardIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"board-1"}, ids)
}

func TestInstance_WithTransactionRollback(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	wantErr := errors.New("boom")
	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Whitelist().AddBoard("board-1"); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	ids, err := dm.Whitelist().BoardIDs()
	require.NoError(t, err)
	assert.Empty(t, ids, "Rolled back insert should not be visible")
}
