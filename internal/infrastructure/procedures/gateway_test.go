package procedures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
)

func TestGormGateway_CallHydratesRows(t *testing.T) {
	db := newTestDB(t)
	mustExec(t, db, `CREATE TABLE equipos (id INTEGER PRIMARY KEY, nombre TEXT NOT NULL, hackathon_id INTEGER NOT NULL);`)
	mustExec(t, db, `INSERT INTO equipos (id, nombre, hackathon_id) VALUES (1, 'Alpha', 7), (2, 'Beta', 7);`)

	gw := NewGateway(db, queryDialect{query: "SELECT id, nombre, hackathon_id FROM equipos WHERE hackathon_id = ? ORDER BY id"})
	rows, err := gw.Call(context.Background(), ListTeams, P("hackathon_id", int64(7)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	id, err := rows[0].Int64("id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Alpha", rows[0].String("nombre"))
	assert.Equal(t, "Beta", rows[1].String("nombre"))
}

func TestGormGateway_EmptyResultIsSuccess(t *testing.T) {
	db := newTestDB(t)
	mustExec(t, db, `CREATE TABLE equipos (id INTEGER PRIMARY KEY, nombre TEXT);`)

	gw := NewGateway(db, queryDialect{query: "SELECT id, nombre FROM equipos WHERE id = ?"})
	rows, err := gw.Call(context.Background(), GetTeamByID, P("id", int64(99)))
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGormGateway_ProcedureFailureSurfacesAsFailure(t *testing.T) {
	db := newTestDB(t)
	// SQLite rejects CALL, which stands in for a procedure-level failure.
	gw := NewGateway(db, MySQL{})
	rows, err := gw.Call(context.Background(), CreateTeam, P("id", int64(0)), P("nombre", "Alpha"), P("hackathon_id", int64(7)))
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
	assert.Contains(t, err.Error(), CreateTeam)
}

func TestGormGateway_RejectsInvalidProcedureName(t *testing.T) {
	gw := NewGateway(newTestDB(t), MySQL{})
	_, err := gw.Call(context.Background(), "sp_x; DROP TABLE equipos")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
}

func TestGormGateway_UsesPinnedConnection(t *testing.T) {
	db := newTestDB(t)
	mustExec(t, db, `CREATE TABLE equipos (id INTEGER PRIMARY KEY, nombre TEXT);`)
	gw := NewGateway(db, queryDialect{query: "SELECT COUNT(*) AS total FROM equipos"})

	// a row written inside a rolled back transaction is visible to calls on
	// the same connection and gone afterwards
	err := db.Transaction(func(tx *gorm.DB) error {
		ctx := context.WithValue(context.Background(), connKey, tx)
		require.NoError(t, GetDB(ctx, db).Exec(`INSERT INTO equipos (id, nombre) VALUES (1, 'Alpha')`).Error)
		rows, err := gw.Call(ctx, ListTeams)
		require.NoError(t, err)
		total, err := rows[0].Int64("total")
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	rows, err := gw.Call(context.Background(), ListTeams)
	require.NoError(t, err)
	total, err := rows[0].Int64("total")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
