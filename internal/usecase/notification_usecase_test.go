package usecase

import (
	"context"
	"errors"
	"testing"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
	mock_interfaces "cleaning_assignments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_ListUnread(t *testing.T) {
	t.Run("recipient required", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		if _, err := uc.ListUnread(context.Background(), "  "); !errors.Is(err, interfaces.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("trims and lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inbox := mock_interfaces.NewMockINotificationInbox(ctrl)
		uc := NewNotificationUseCase(inbox, fixedClock{t: t0})

		inbox.EXPECT().ListUnread(gomock.Any(), "p-1").Return([]entities.InboxNotification{{ID: "n-1"}}, nil)

		got, err := uc.ListUnread(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "n-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("id required", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		if _, err := uc.MarkRead(context.Background(), ""); !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("stamps with the clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inbox := mock_interfaces.NewMockINotificationInbox(ctrl)
		uc := NewNotificationUseCase(inbox, fixedClock{t: t0})

		inbox.EXPECT().MarkRead(gomock.Any(), "n-1", t0).Return(entities.InboxNotification{ID: "n-1", Read: true}, nil)

		got, err := uc.MarkRead(context.Background(), "n-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Read {
			t.Fatalf("expected read")
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inbox := mock_interfaces.NewMockINotificationInbox(ctrl)
		uc := NewNotificationUseCase(inbox, nil)

		inbox.EXPECT().MarkRead(gomock.Any(), "n-9", gomock.Any()).Return(entities.InboxNotification{}, interfaces.ErrNotificationNotFound)

		if _, err := uc.MarkRead(context.Background(), "n-9"); !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
