package core

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
)

// FieldUpdate is the result of a transform: the field to write and its new value.
type FieldUpdate struct {
	Field string
	Value interface{}
}

// userField describes a user field that may be written through the updater.
type userField struct {
	current func(u *models.User) interface{}
	kind    reflect.Type
}

var updatableUserFields = map[string]userField{
	"totalTokens": {current: func(u *models.User) interface{} { return u.TotalTokens }, kind: reflect.TypeOf(int64(0))},
	"chats":       {current: func(u *models.User) interface{} { return u.Chats }, kind: reflect.TypeOf([]string(nil))},
	"plan":        {current: func(u *models.User) interface{} { return u.Plan }, kind: reflect.TypeOf("")},
	"name":        {current: func(u *models.User) interface{} { return u.Name }, kind: reflect.TypeOf("")},
	"email":       {current: func(u *models.User) interface{} { return u.Email }, kind: reflect.TypeOf("")},
}

// FieldUpdater applies read-transform-write updates to a single user field.
// Each call does exactly one read and at most one write. The write is
// conditioned on the document not having changed since the read.
type FieldUpdater struct {
	users db.UserRepository
}

// NewFieldUpdater creates a FieldUpdater over the given repository.
func NewFieldUpdater(users db.UserRepository) *FieldUpdater {
	return &FieldUpdater{users: users}
}

// UpdateField reads the user, derives the update with transform and writes it.
// It fails with ErrNotFound if the user is absent, ErrValidation for an
// unknown field or a value of the wrong type, ErrNoOp when there is nothing
// to write and ErrStale when the user changed concurrently.
func (f *FieldUpdater) UpdateField(ctx context.Context, userID string, transform func(u *models.User) FieldUpdate) error {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return translateRepoError(err, "user", userID)
	}

	update := transform(user)

	field, ok := updatableUserFields[update.Field]
	if !ok {
		return ValidationFailed(update.Field, fmt.Sprintf("invalid field: %q", update.Field))
	}
	if isNil(update.Value) {
		return NoOp(update.Field)
	}
	if reflect.TypeOf(update.Value) != field.kind {
		return ValidationFailed(update.Field, fmt.Sprintf("invalid value type %T for field %s", update.Value, update.Field))
	}
	if reflect.DeepEqual(field.current(user), update.Value) {
		return NoOp(update.Field)
	}

	if err := f.users.UpdateField(ctx, userID, update.Field, update.Value, user.Version); err != nil {
		return translateRepoError(err, "user", userID)
	}
	return nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// translateRepoError maps repository sentinels onto service error classes.
func translateRepoError(err error, resource, id string) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return NotFound(resource, id)
	case errors.Is(err, db.ErrPreconditionFailed):
		return Stale(resource, id, err)
	}
	return err
}
