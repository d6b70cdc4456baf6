package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/app/repositories"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/auth"
)

type fakeUsers struct {
	byEmail  map[string]models.User
	created  []models.User
	promoted []primitive.ObjectID
	deleted  []primitive.ObjectID
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byEmail: map[string]models.User{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Create(_ context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return user.ID, nil
}

func (f *fakeUsers) All(context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Promote(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.promoted = append(f.promoted, id)
	return 1, nil
}

func (f *fakeUsers) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 1, nil
}

func TestRegisterNewUser(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:  "Guest",
		Email: "guest@bistro.test",
	})
	require.NoError(t, err)

	require.NotNil(t, result.InsertedID)
	require.Len(t, users.created, 1)
	assert.Equal(t, "guest@bistro.test", users.created[0].Email)
	assert.Empty(t, users.created[0].Password, "no password supplied, none stored")
}

func TestRegisterIsIdempotentByEmail(t *testing.T) {
	users := newFakeUsers(models.User{Email: "guest@bistro.test", Name: "Guest"})
	svc := NewUserService(users)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:  "Someone Else",
		Email: "guest@bistro.test",
	})
	require.NoError(t, err)

	assert.Nil(t, result.InsertedID)
	assert.Equal(t, "user already exists", result.Message)
	assert.Empty(t, users.created, "existing email must not touch storage")
}

func TestRegisterHashesOptionalPassword(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Guest",
		Email:    "guest@bistro.test",
		Password: "hunter22",
	})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	stored := users.created[0].Password
	require.NotEmpty(t, stored)
	assert.NotEqual(t, "hunter22", stored)
	assert.True(t, auth.CheckPassword(stored, "hunter22"))
}

func TestIsAdmin(t *testing.T) {
	users := newFakeUsers(
		models.User{Email: "boss@bistro.test", Role: models.RoleAdmin},
		models.User{Email: "guest@bistro.test", Role: "user"},
	)
	svc := NewUserService(users)

	admin, err := svc.IsAdmin(context.Background(), "boss@bistro.test")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin(context.Background(), "guest@bistro.test")
	require.NoError(t, err)
	assert.False(t, admin)

	// Unknown users are simply not admins, not an error.
	admin, err = svc.IsAdmin(context.Background(), "nobody@bistro.test")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestPromoteRejectsMalformedID(t *testing.T) {
	svc := NewUserService(newFakeUsers())

	_, err := svc.Promote(context.Background(), "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestPromoteAndDelete(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	id := primitive.NewObjectID()

	modified, err := svc.Promote(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	assert.Equal(t, []primitive.ObjectID{id}, users.promoted)

	deleted, err := svc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, []primitive.ObjectID{id}, users.deleted)
}
