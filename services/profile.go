package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileService struct {
	*Deps
}

// profile returns the user profile, creating it from the user name on first use
func (p *ProfileService) profile(ctx context.Context, idUser primitive.ObjectID) (*models.UserProfile, *res.ErrorRes) {
	profile, err := p.Profiles.FindByUser(ctx, idUser)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if profile != nil {
		return profile, nil
	}
	user, errRes := p.findUser(ctx, idUser)
	if errRes != nil {
		return nil, errRes
	}
	now := nowFunc()
	profile = &models.UserProfile{
		User:        idUser,
		DisplayName: user.Name,
		Interests:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := p.Profiles.Insert(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return p.existingProfile(ctx, idUser)
		}
		return nil, p.unavailable(err)
	}
	profile.ID = id
	return profile, nil
}

func (p *ProfileService) existingProfile(ctx context.Context, idUser primitive.ObjectID) (*models.UserProfile, *res.ErrorRes) {
	profile, err := p.Profiles.FindByUser(ctx, idUser)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if profile == nil {
		return nil, res.NotFound(fmt.Errorf("profile not found"))
	}
	return profile, nil
}

func (p *ProfileService) GetProfile(ctx context.Context, claims *Claims) (*models.UserProfile, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	return p.profile(ctx, idUser)
}

func (p *ProfileService) UpdateProfile(ctx context.Context, update *forms.ProfileForm, claims *Claims) (*models.UserProfile, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	profile, errRes := p.profile(ctx, idUser)
	if errRes != nil {
		return nil, errRes
	}
	if update.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}
	if update.Website != nil {
		profile.Website = *update.Website
	}
	if update.Interests != nil {
		profile.Interests = update.Interests
	}
	profile.UpdatedAt = nowFunc()
	if err := p.Profiles.Save(ctx, profile); err != nil {
		return nil, p.unavailable(err)
	}
	return profile, nil
}

func (p *ProfileService) UploadAvatar(ctx context.Context, file *multipart.FileHeader, claims *Claims) (*models.UserProfile, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	profile, errRes := p.profile(ctx, idUser)
	if errRes != nil {
		return nil, errRes
	}
	key := fmt.Sprintf("avatars/%s%s", idUser.Hex(), filepath.Ext(file.Filename))
	location, errRes := p.uploadImage(ctx, key, file)
	if errRes != nil {
		return nil, errRes
	}
	profile.Avatar = location
	profile.UpdatedAt = nowFunc()
	if err := p.Profiles.Save(ctx, profile); err != nil {
		return nil, p.unavailable(err)
	}
	return profile, nil
}

// GetPublicProfile hides profiles whose owner turned profile_public off
func (p *ProfileService) GetPublicProfile(ctx context.Context, idUser string) (*PublicProfile, *res.ErrorRes) {
	idObjUser, errRes := parseID(idUser, "user")
	if errRes != nil {
		return nil, errRes
	}
	user, errRes := p.findUser(ctx, idObjUser)
	if errRes != nil {
		return nil, errRes
	}
	settings, err := p.Settings.FindByUser(ctx, idObjUser)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if settings != nil && !settings.ProfilePublic {
		return nil, res.NotFound(fmt.Errorf("profile not found"))
	}
	profile, errRes := p.profile(ctx, idObjUser)
	if errRes != nil {
		return nil, errRes
	}
	simple := user.Simple()
	simple.Email = ""
	return &PublicProfile{
		User:    simple,
		Profile: profile,
	}, nil
}
