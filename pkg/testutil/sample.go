package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
)

// SampleUser creates a user with randomized fields. Non-zero fields of init
// overwrite the sample before it is persisted.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	sample := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           uuid.NewString(),
		Email:          uuid.NewString() + "@example.com",
		HashedPassword: "not-a-real-hash",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleActivity(ctx context.Context, init *entity.Activity) (entity.Activity, error) {
	sample := &entity.Activity{
		Base:        entity.Base{ID: uuid.NewString()},
		Type:        entity.ActivityRunning,
		DurationSec: 1800,
		DistanceM:   5000,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.UserID == "" {
		user, err := SampleUser(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.UserID = user.ID
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleComment(ctx context.Context, init *entity.Comment) (entity.Comment, error) {
	sample := &entity.Comment{
		Base: entity.Base{ID: uuid.NewString()},
		Body: "Nice run!",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.ActivityID == "" {
		activity, err := SampleActivity(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.ActivityID = activity.ID
	}

	if sample.UserID == "" {
		user, err := SampleUser(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.UserID = user.ID
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
