package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
)

// SampleParticipant creates a participant in the database with randomized
// fields. Non-zero fields of init overwrite the sample.
func SampleParticipant(ctx context.Context, init *entity.Participant) (entity.Participant, error) {
	sample := &entity.Participant{
		Base: entity.Base{ID: uuid.NewString()},
		Name: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleRound creates a round in the database. Non-zero fields of init
// overwrite the sample.
func SampleRound(ctx context.Context, init *entity.Round) (entity.Round, error) {
	sample := &entity.Round{
		Base: entity.Base{ID: uuid.NewString()},
	}

	if init != nil {
		overwriteFields(sample, *init)
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
		if !reflect.DeepEqual(overwriteField.Interface(), reflect.Zero(overwriteField.Type()).Interface()) {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
