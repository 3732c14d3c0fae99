package service_test

import (
	"errors"
	"testing"
	"time"

	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/mocks"
	"octofit-backend/internal/repository/memory"
	"octofit-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newActivityFixture(t *testing.T) (*service.ActivityService, *service.UserService) {
	t.Helper()
	store := memory.NewStore()
	v := service.NewValidator()
	return service.NewActivityService(store.Activities, store.Users, v), service.NewUserService(store.Users, v)
}

func TestActivityService_DanglingUserIsUnknown(t *testing.T) {
	activities, _ := newActivityFixture(t)

	resp, err := activities.CreateActivity(&service.CreateActivityRequest{
		UserID:       "test_user_123",
		ActivityType: "Running",
		Duration:     30,
		Calories:     300,
	})

	require.NoError(t, err)
	assert.Equal(t, service.UnknownUserName, resp.UserName)
	assert.Equal(t, models.UserRef("test_user_123"), resp.UserID)
	assert.False(t, resp.Date.IsZero())
}

func TestActivityService_ResolvesUserName(t *testing.T) {
	activities, users := newActivityFixture(t)
	natasha, err := users.CreateUser(&service.CreateUserRequest{Email: "natasha.romanoff@avengers.com", Name: "Natasha Romanoff"})
	require.NoError(t, err)

	date := time.Date(2025, 1, 15, 7, 30, 0, 0, time.UTC)
	created, err := activities.CreateActivity(&service.CreateActivityRequest{
		UserID:       natasha.ID.String(),
		ActivityType: "Boxing",
		Duration:     45,
		Calories:     540,
		Date:         &date,
		Notes:        "Boxing session by Natasha Romanoff",
	})
	require.NoError(t, err)
	assert.Equal(t, "Natasha Romanoff", created.UserName)
	assert.True(t, created.Date.Equal(date))

	// deleting the user turns the reference into a dangling one
	require.NoError(t, users.DeleteUser(natasha.ID))
	got, err := activities.GetActivityByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, service.UnknownUserName, got.UserName)
}

func TestActivityService_ListFilters(t *testing.T) {
	activities, users := newActivityFixture(t)
	a, err := users.CreateUser(&service.CreateUserRequest{Email: "barry.allen@justiceleague.com", Name: "Barry Allen"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := activities.CreateActivity(&service.CreateActivityRequest{UserID: a.ID.String(), ActivityType: "Running", Duration: 20, Calories: 200})
		require.NoError(t, err)
	}
	_, err = activities.CreateActivity(&service.CreateActivityRequest{UserID: uuid.NewString(), ActivityType: "Yoga", Duration: 30, Calories: 240})
	require.NoError(t, err)

	all, err := activities.ListActivities(nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	userID := a.ID.String()
	mine, err := activities.ListActivities(&userID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, act := range mine {
		assert.Equal(t, "Barry Allen", act.UserName)
	}

	none, err := activities.ListActivitiesByUser(uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestActivityService_UpdateAndValidation(t *testing.T) {
	activities, _ := newActivityFixture(t)

	_, err := activities.CreateActivity(&service.CreateActivityRequest{UserID: "x", ActivityType: "Running", Calories: -1})
	v, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "calories", v.Field)

	created, err := activities.CreateActivity(&service.CreateActivityRequest{UserID: "x", ActivityType: "Running", Duration: 10, Calories: 100})
	require.NoError(t, err)

	calories := 150
	updated, err := activities.UpdateActivity(created.ID, &service.UpdateActivityRequest{Calories: &calories})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Calories)
	assert.Equal(t, 10, updated.Duration)

	_, err = activities.UpdateActivity(uuid.New(), &service.UpdateActivityRequest{Calories: &calories})
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestActivityService_ReplaceWithoutDateResetsIt(t *testing.T) {
	activities, _ := newActivityFixture(t)

	old := time.Date(2025, 1, 15, 7, 30, 0, 0, time.UTC)
	created, err := activities.CreateActivity(&service.CreateActivityRequest{
		UserID: "x", ActivityType: "Running", Duration: 30, Calories: 300, Date: &old,
	})
	require.NoError(t, err)

	before := time.Now()
	replaced, err := activities.UpdateActivity(created.ID, (&service.CreateActivityRequest{
		UserID: "x", ActivityType: "Cycling", Duration: 40, Calories: 320,
	}).AsUpdate())
	require.NoError(t, err)
	assert.Equal(t, "Cycling", replaced.ActivityType)
	assert.False(t, replaced.Date.Before(before))

	// a partial update without a date keeps it
	calories := 330
	patched, err := activities.UpdateActivity(created.ID, &service.UpdateActivityRequest{Calories: &calories})
	require.NoError(t, err)
	assert.True(t, patched.Date.Equal(replaced.Date))

	// a replacement with a date uses it
	replaced, err = activities.UpdateActivity(created.ID, (&service.CreateActivityRequest{
		UserID: "x", ActivityType: "Running", Date: &old,
	}).AsUpdate())
	require.NoError(t, err)
	assert.True(t, replaced.Date.Equal(old))
}

func TestActivityService_ResolveStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepositoryInterface(ctrl)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := service.NewActivityService(activityRepo, userRepo, service.NewValidator())

	userID := uuid.New()
	activityRepo.EXPECT().GetAll().Return([]models.Activity{
		{UserID: models.NewUserRef(userID)},
		{UserID: models.NewUserRef(userID)},
	}, nil)
	userRepo.EXPECT().GetByID(userID).Return(nil, errors.New("timeout"))

	_, err := svc.ListActivities(nil)
	assert.Error(t, err)
}

func TestActivityService_ResolvesEachUserOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepositoryInterface(ctrl)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := service.NewActivityService(activityRepo, userRepo, service.NewValidator())

	known, missing := uuid.New(), uuid.New()
	activityRepo.EXPECT().GetAll().Return([]models.Activity{
		{UserID: models.NewUserRef(known)},
		{UserID: models.NewUserRef(missing)},
		{UserID: models.NewUserRef(known)},
		{UserID: models.UserRef("507f1f77bcf86cd799439011")},
	}, nil)
	userRepo.EXPECT().GetByID(known).Return(&models.User{Name: "Arthur Curry"}, nil).Times(1)
	userRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound).Times(1)

	list, err := svc.ListActivities(nil)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Arthur Curry", list[0].UserName)
	assert.Equal(t, service.UnknownUserName, list[1].UserName)
	assert.Equal(t, "Arthur Curry", list[2].UserName)
	assert.Equal(t, service.UnknownUserName, list[3].UserName)
}
