package services

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/mongo"
)

type SettingsService struct {
	*Deps
}

// GetSettings inserts the defaults on first read
func (s *SettingsService) GetSettings(ctx context.Context, claims *Claims) (*models.UserSettings, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	settings, err := s.Settings.FindByUser(ctx, idUser)
	if err != nil {
		return nil, s.unavailable(err)
	}
	if settings != nil {
		return settings, nil
	}
	settings = models.DefaultUserSettings(idUser, nowFunc())
	id, err := s.Settings.Insert(ctx, settings)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			existing, findErr := s.Settings.FindByUser(ctx, idUser)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, s.unavailable(err)
	}
	settings.ID = id
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, update *forms.SettingsForm, claims *Claims) (*models.UserSettings, *res.ErrorRes) {
	settings, errRes := s.GetSettings(ctx, claims)
	if errRes != nil {
		return nil, errRes
	}
	if update.EmailNotifications != nil {
		settings.EmailNotifications = *update.EmailNotifications
	}
	if update.PushNotifications != nil {
		settings.PushNotifications = *update.PushNotifications
	}
	if update.Language != nil {
		settings.Language = *update.Language
	}
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.Timezone != nil {
		settings.Timezone = *update.Timezone
	}
	if update.DailyGoalMinutes != nil {
		settings.DailyGoalMinutes = *update.DailyGoalMinutes
	}
	if update.ProfilePublic != nil {
		settings.ProfilePublic = *update.ProfilePublic
	}
	settings.UpdatedAt = nowFunc()
	if err := s.Settings.Save(ctx, settings); err != nil {
		return nil, s.unavailable(err)
	}
	return settings, nil
}
