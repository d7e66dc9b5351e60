package store

import (
	"errors"

	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/logger"
	"github.com/budgetwise/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetOrCreateOutcome reports how a user row was obtained.
type GetOrCreateOutcome int

const (
	UserFound GetOrCreateOutcome = iota
	UserCreated
	UserConflictResolved
)

// GetOrCreateUser looks up a user by external identity and lazily creates the
// row on first sight. Two concurrent requests for the same new identity may
// both attempt the insert; the unique index rejects the loser, which then
// re-reads the row the winner created instead of propagating the conflict.
func GetOrCreateUser(externalID, email, name string) (models.User, GetOrCreateOutcome, error) {
	var user models.User
	err := DB.Where("external_id = ?", externalID).First(&user).Error
	if err == nil {
		return user, UserFound, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, UserFound, err
	}

	if email == "" || name == "" {
		return models.User{}, UserFound, &ledger.ValidationError{
			Reason: "email and name claims are required to create a new user",
		}
	}

	user = models.User{ExternalID: externalID, Email: email, Name: name}
	if err := DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if err := DB.Where("external_id = ?", externalID).First(&existing).Error; err != nil {
				return models.User{}, UserFound, err
			}
			logger.Log.Info("user insert lost race, reusing existing row",
				zap.String("externalID", externalID))
			return existing, UserConflictResolved, nil
		}
		return models.User{}, UserFound, err
	}

	logger.Log.Info("created new user", zap.String("externalID", externalID), zap.String("email", email))
	return user, UserCreated, nil
}

// SyncUser reconciles the stored profile with the token claims, updating
// email and name when they drifted.
func SyncUser(externalID, email, name string) (models.User, error) {
	user, _, err := GetOrCreateUser(externalID, email, name)
	if err != nil {
		return models.User{}, err
	}

	changed := false
	if email != "" && email != user.Email {
		user.Email = email
		changed = true
	}
	if name != "" && name != user.Name {
		user.Name = name
		changed = true
	}
	if !changed {
		return user, nil
	}
	if err := DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUserName renames the profile; the row is created first if the user
// has never been seen.
func UpdateUserName(externalID, email, name, newName string) (models.User, error) {
	user, _, err := GetOrCreateUser(externalID, email, name)
	if err != nil {
		return models.User{}, err
	}
	if newName != "" {
		user.Name = newName
		if err := DB.Save(&user).Error; err != nil {
			return models.User{}, err
		}
	}
	return user, nil
}
