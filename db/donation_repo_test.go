package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/fundhub/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGormDB(t *testing.T) (*GormDB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &GormDB{DB: gormDB}, mock
}

// The intern's running totals must move in the same transaction as the
// donation insert.
func TestCreateDonation_BumpsInternTotalsInOneTransaction(t *testing.T) {
	gormDB, mock := newMockGormDB(t)
	repo := NewDonationRepo(gormDB)
	internID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "donations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "interns" SET .*(donations_count \+ 1.*total_raised \+ |total_raised \+ .*donations_count \+ 1)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	donation, err := repo.CreateDonation(internID, &models.Donation{Amount: 250, DonorName: "John Smith"})
	require.NoError(t, err)
	assert.Equal(t, internID, donation.InternID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDonation_RollsBackWhenCounterUpdateFails(t *testing.T) {
	gormDB, mock := newMockGormDB(t)
	repo := NewDonationRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "donations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "interns" SET`).
		WillReturnError(gorm.ErrInvalidTransaction)
	mock.ExpectRollback()

	_, err := repo.CreateDonation(uuid.New(), &models.Donation{Amount: 100})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
