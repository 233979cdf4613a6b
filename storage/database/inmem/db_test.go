package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/sheet"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/storage/database/seed"
)

func TestDB_LoadReset(t *testing.T) {
	ctx := context.Background()
	db := NewSeeded()
	students := NewStudentRepository(db)
	ledger := NewAttendanceRepository(db)
	users := NewUserRepository(db)

	all, err := students.QueryStudents(ctx, student.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 36)

	require.NoError(t, ledger.SaveLedger(ctx, []attendance.Record{{StudentID: "S1", SessionID: "SES1", Date: "2024-01-01", Status: attendance.StatusPresent}}))
	_, err = users.CreateUser(ctx, user.User{ID: "u1", Username: "u1"})
	require.NoError(t, err)

	db.Load(seed.Sample())
	records, err := ledger.QueryLedger(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1, "Load leaves the ledger alone")

	db.Reset()
	records, err = ledger.QueryLedger(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	all, err = students.QueryStudents(ctx, student.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = users.GetUser(ctx, user.GetFilter{ID: "u1"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestAttendanceRepository_copies(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(New())

	in := []attendance.Record{{StudentID: "S1", SessionID: "SES1", Date: "2024-01-01", Status: attendance.StatusPresent}}
	require.NoError(t, repo.SaveLedger(ctx, in))
	in[0].Status = attendance.StatusAbsent

	out, err := repo.QueryLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, out[0].Status)

	out[0].Status = attendance.StatusAbsent
	again, err := repo.QueryLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, again[0].Status)
}

func TestSheetRepository_copies(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetRepository(NewSeeded())

	sht, err := repo.GetSheet(ctx, "DS1")
	require.NoError(t, err)
	sht.Rows[0].ColA = "changed"

	again, err := repo.GetSheet(ctx, "DS1")
	require.NoError(t, err)
	assert.Equal(t, "Sample A1", again.Rows[0].ColA)

	sheets, err := repo.QuerySheets(ctx)
	require.NoError(t, err)
	for _, s := range sheets {
		assert.Nil(t, s.Rows, "listing omits rows")
	}

	assert.ErrorIs(t, repo.SaveRows(ctx, "DS99", nil), sheet.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(New())

	_, err := repo.CreateUser(ctx, user.User{ID: "u1", Username: "jane", Email: "jane@darasa.school"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.CheckUsernameUniqueness(ctx, "jane", ""), user.ErrUsernameExists)
	assert.ErrorIs(t, repo.CheckUsernameUniqueness(ctx, "", "jane@darasa.school"), user.ErrEmailExists)
	assert.NoError(t, repo.CheckUsernameUniqueness(ctx, "john", "john@darasa.school"))

	usr, err := repo.GetUser(ctx, user.GetFilter{UsernameOrEmail: "jane@darasa.school"})
	require.NoError(t, err)
	assert.Equal(t, "u1", usr.ID)

	usr.Name = "Jane"
	_, err = repo.UpdateUser(ctx, usr)
	require.NoError(t, err)
	usr, err = repo.GetUser(ctx, user.GetFilter{Username: "jane"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", usr.Name)

	_, err = repo.UpdateUser(ctx, user.User{ID: "u2"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}
