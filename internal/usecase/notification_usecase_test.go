package usecase_test

import (
	"context"
	"testing"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationList_ForUser(t *testing.T) {
	notifications := &NotificationRepoMock{}
	uc := usecase.NewNotificationUsecase(notifications)

	userID := "user-1"
	notifications.On("ListByUserID", mock.Anything, "user-1").
		Return([]model.Notification{
			{ID: "n-2", UserID: &userID, Message: "order shipped", Status: model.NotificationSeen},
			{ID: "n-1", UserID: &userID, Message: "welcome", Status: model.NotificationUnseen},
		}, nil)

	out, err := uc.ListForUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "n-2", out[0].ID)
}

func TestNotificationList_EmptyUserID(t *testing.T) {
	uc := usecase.NewNotificationUsecase(&NotificationRepoMock{})

	_, err := uc.ListForUser(context.Background(), "")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

// 既読化は何度当てても同じ結果
func TestNotificationMarkSeen_Idempotent(t *testing.T) {
	notifications := &NotificationRepoMock{}
	uc := usecase.NewNotificationUsecase(notifications)

	notifications.On("MarkSeen", mock.Anything, "n-1").Return(nil)

	assert.NoError(t, uc.MarkSeen(context.Background(), "n-1"))
	assert.NoError(t, uc.MarkSeen(context.Background(), "n-1"))

	notifications.AssertNumberOfCalls(t, "MarkSeen", 2)
}

func TestNotificationMarkSeen_Unknown(t *testing.T) {
	notifications := &NotificationRepoMock{}
	uc := usecase.NewNotificationUsecase(notifications)

	notifications.On("MarkSeen", mock.Anything, "n-missing").Return(repo.ErrNotFound)

	err := uc.MarkSeen(context.Background(), "n-missing")
	assert.ErrorIs(t, err, usecase.ErrNotificationNotFound)
}
