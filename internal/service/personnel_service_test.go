package service

import (
	"regexp"
	"testing"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonnelService(t *testing.T) (*PersonnelService, sqlmock.Sqlmock) {
	gdb, mock := newMockDB(t)
	return NewPersonnelService(
		repository.NewPersonnelRepository(gdb),
		repository.NewUserRepository(gdb),
	), mock
}

func TestCreateAccount_RejectsUnknownRole(t *testing.T) {
	svc, _ := newPersonnelService(t)

	_, err := svc.CreateAccount(1, "a@b.c", "password123", "Superuser")
	assert.ErrorIs(t, err, util.ErrUnknownRole)
}

// Any failure inside account provisioning rolls the whole transaction back:
// no user row survives and the personnel link stays empty.
func TestCreateAccount_DuplicateEmailRollsBack(t *testing.T) {
	svc, mock := newPersonnelService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "personnel"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "last_name", "first_name", "user_id"}).
			AddRow(3, "Ivanov", "Ivan", nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(7, "taken@example.com"))
	mock.ExpectRollback()

	_, err := svc.CreateAccount(3, "taken@example.com", "password123", authz.User)

	assert.ErrorIs(t, err, util.ErrEmailRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_AlreadyLinkedRollsBack(t *testing.T) {
	svc, mock := newPersonnelService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "personnel"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "last_name", "first_name", "user_id"}).
			AddRow(3, "Ivanov", "Ivan", 9))
	mock.ExpectRollback()

	_, err := svc.CreateAccount(3, "new@example.com", "password123", authz.User)

	assert.ErrorIs(t, err, util.ErrAccountExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
