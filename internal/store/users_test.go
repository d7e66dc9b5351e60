package store

import (
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/logger"
	"github.com/budgetwise/backend/internal/models"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newTestDB points the package-global DB at an in-memory sqlite database.
// SkipDefaultTransaction plus a single pooled connection lets a test inject
// a competing insert between the lookup and the create.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Budget{}, &models.Savings{}))
	DB = db
	return db
}

func TestGetOrCreateUser_CreatedThenFound(t *testing.T) {
	newTestDB(t)

	user, outcome, err := GetOrCreateUser("user_1", "jo@example.com", "Jo")
	require.NoError(t, err)
	assert.Equal(t, UserCreated, outcome)
	assert.NotZero(t, user.ID)

	again, outcome, err := GetOrCreateUser("user_1", "jo@example.com", "Jo")
	require.NoError(t, err)
	assert.Equal(t, UserFound, outcome)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateUser_RequiresClaimsForNewUser(t *testing.T) {
	newTestDB(t)

	_, _, err := GetOrCreateUser("user_1", "", "")
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// Two concurrent requests for the same new identity both miss the lookup and
// both try the insert; the loser must resolve the unique-constraint conflict
// by re-reading the winner's row. The race is made deterministic here by
// inserting the winner from a create callback, after the loser's lookup has
// already missed.
func TestGetOrCreateUser_ConflictResolved(t *testing.T) {
	db := newTestDB(t)

	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("race_winner", func(tx *gorm.DB) {
		if raced {
			return
		}
		raced = true
		winner := models.User{ExternalID: "user_1", Email: "jo@example.com", Name: "Jo"}
		if err := db.Session(&gorm.Session{NewDB: true}).Create(&winner).Error; err != nil {
			t.Errorf("winner insert failed: %v", err)
		}
	})
	require.NoError(t, err)

	user, outcome, err := GetOrCreateUser("user_1", "jo@example.com", "Jo")
	require.NoError(t, err)
	assert.Equal(t, UserConflictResolved, outcome)
	assert.Equal(t, "user_1", user.ExternalID)

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the losing insert must not create a second row")
}

func TestSyncUser_UpdatesDriftedClaims(t *testing.T) {
	newTestDB(t)

	created, _, err := GetOrCreateUser("user_1", "old@example.com", "Old Name")
	require.NoError(t, err)

	synced, err := SyncUser("user_1", "new@example.com", "New Name")
	require.NoError(t, err)
	assert.Equal(t, created.ID, synced.ID)
	assert.Equal(t, "new@example.com", synced.Email)
	assert.Equal(t, "New Name", synced.Name)
}
