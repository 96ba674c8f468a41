package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/internal/repository"
	"github.com/stridelab/backend/pkg/enum"
	"github.com/stridelab/backend/pkg/errorx"
	"github.com/stridelab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileDomain interface {
	Create(context.Context, *model.CreateProfileRequest) (*model.CreateProfileResponse, error)
	Get(context.Context, *model.GetProfileRequest) (*model.GetProfileResponse, error)
	GetList(context.Context, *model.GetProfilesRequest) (*model.GetProfilesResponse, error)
	Update(context.Context, *model.UpdateProfileRequest) (*model.UpdateProfileResponse, error)
	Delete(context.Context, *model.DeleteProfileRequest) (*model.DeleteProfileResponse, error)
}

type profileDomain struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileDomain(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) *profileDomain {
	return &profileDomain{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func validateGender(value *string) (sql.NullString, error) {
	if value == nil {
		return sql.NullString{}, nil
	}

	gender, err := enum.ToEnum[entity.Gender](*value)
	if err != nil {
		return sql.NullString{}, errorx.New(errorx.BadRequest, "Invalid gender %s", *value)
	}

	return sql.NullString{Valid: true, String: string(gender)}, nil
}

func validateNonNegativeFloat(name string, value *float64) (sql.NullFloat64, error) {
	if value == nil {
		return sql.NullFloat64{}, nil
	}

	if *value < 0 {
		return sql.NullFloat64{}, errorx.New(errorx.BadRequest, "Invalid %s", name)
	}

	return sql.NullFloat64{Valid: true, Float64: *value}, nil
}

func validateAge(value *int64) (sql.NullInt64, error) {
	if value == nil {
		return sql.NullInt64{}, nil
	}

	if *value < 0 {
		return sql.NullInt64{}, errorx.New(errorx.BadRequest, "Invalid age")
	}

	return sql.NullInt64{Valid: true, Int64: *value}, nil
}

func (d *profileDomain) Create(
	ctx context.Context, req *model.CreateProfileRequest,
) (*model.CreateProfileResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	gender, err := validateGender(req.Gender)
	if err != nil {
		return nil, err
	}

	weight, err := validateNonNegativeFloat("weight", req.WeightKg)
	if err != nil {
		return nil, err
	}

	height, err := validateNonNegativeFloat("height", req.HeightCm)
	if err != nil {
		return nil, err
	}

	age, err := validateAge(req.Age)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		City:        req.City,
		Country:     req.Country,
		Gender:      gender,
		WeightKg:    weight,
		HeightCm:    height,
		Age:         age,
		Bio:         req.Bio,
	}

	if err := d.profileRepo.Create(ctx, profile); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Profile already exists")
		}

		xcontext.Logger(ctx).Errorf("Cannot create profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateProfileResponse(model.ConvertProfile(profile))
	return &resp, nil
}

func (d *profileDomain) Get(
	ctx context.Context, req *model.GetProfileRequest,
) (*model.GetProfileResponse, error) {
	profile, err := d.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetProfileResponse(model.ConvertProfile(profile))
	return &resp, nil
}

func (d *profileDomain) GetList(
	ctx context.Context, req *model.GetProfilesRequest,
) (*model.GetProfilesResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	profiles, err := d.profileRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get profiles: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetProfilesResponse{Profiles: []model.Profile{}}
	for i := range profiles {
		resp.Profiles = append(resp.Profiles, model.ConvertProfile(&profiles[i]))
	}

	return resp, nil
}

func (d *profileDomain) Update(
	ctx context.Context, req *model.UpdateProfileRequest,
) (*model.UpdateProfileResponse, error) {
	if req.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can update this profile")
	}

	updateMap := map[string]any{}
	if req.DisplayName != nil {
		updateMap["display_name"] = *req.DisplayName
	}

	if req.City != nil {
		updateMap["city"] = *req.City
	}

	if req.Country != nil {
		updateMap["country"] = *req.Country
	}

	if req.Gender != nil {
		gender, err := validateGender(req.Gender)
		if err != nil {
			return nil, err
		}
		updateMap["gender"] = gender
	}

	if req.WeightKg != nil {
		weight, err := validateNonNegativeFloat("weight", req.WeightKg)
		if err != nil {
			return nil, err
		}
		updateMap["weight_kg"] = weight
	}

	if req.HeightCm != nil {
		height, err := validateNonNegativeFloat("height", req.HeightCm)
		if err != nil {
			return nil, err
		}
		updateMap["height_cm"] = height
	}

	if req.Age != nil {
		age, err := validateAge(req.Age)
		if err != nil {
			return nil, err
		}
		updateMap["age"] = age
	}

	if req.Bio != nil {
		updateMap["bio"] = *req.Bio
	}

	if len(updateMap) > 0 {
		if err := d.profileRepo.UpdateByUserID(ctx, req.UserID, updateMap); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found profile")
			}

			xcontext.Logger(ctx).Errorf("Cannot update profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	profile, err := d.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateProfileResponse(model.ConvertProfile(profile))
	return &resp, nil
}

func (d *profileDomain) Delete(
	ctx context.Context, req *model.DeleteProfileRequest,
) (*model.DeleteProfileResponse, error) {
	if req.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can delete this profile")
	}

	if err := d.profileRepo.DeleteByUserID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteProfileResponse{}, nil
}
