package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/classcal/classcal-backend/internal/logger"
	"github.com/classcal/classcal-backend/internal/requestdata"
	"github.com/classcal/classcal-backend/internal/types"
)

type fakeClassRepo struct {
	classes  []*types.Class
	getErr   error
	replErr  error
	replaced map[uuid.UUID][]types.CustomEvent
}

func (f *fakeClassRepo) Create(ctx context.Context, tx *gorm.DB, classes []*types.Class) ([]*types.Class, error) {
	f.classes = append(f.classes, classes...)
	return classes, nil
}

func (f *fakeClassRepo) GetByIDs(ctx context.Context, tx *gorm.DB, classIDs []uuid.UUID) ([]*types.Class, error) {
	var out []*types.Class
	for _, c := range f.classes {
		for _, id := range classIDs {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, f.getErr
}

func (f *fakeClassRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Class, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*types.Class
	for _, c := range f.classes {
		for _, id := range userIDs {
			if c.UserID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeClassRepo) Update(ctx context.Context, tx *gorm.DB, class *types.Class) error {
	return nil
}

func (f *fakeClassRepo) Delete(ctx context.Context, tx *gorm.DB, classID, userID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeClassRepo) ReplaceCustomEvents(ctx context.Context, tx *gorm.DB, classID uuid.UUID, events []types.CustomEvent) error {
	if f.replErr != nil {
		return f.replErr
	}
	if f.replaced == nil {
		f.replaced = make(map[uuid.UUID][]types.CustomEvent)
	}
	f.replaced[classID] = events
	for _, c := range f.classes {
		if c.ID == classID {
			c.CustomEvents = events
		}
	}
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func authedContext(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

func seededClass(userID uuid.UUID, code string) *types.Class {
	return &types.Class{
		ID:     uuid.New(),
		UserID: userID,
		Code:   code,
		Term:   "Fall 2025",
		Meetings: []types.Meeting{
			{Type: "Lecture", Day: "Tue", StartTime: "10:00", EndTime: "11:15", Location: "Hall 2"},
		},
		Assignments: []types.Assignment{
			{Title: "Homework 1", DueDate: "2025-10-01"},
		},
	}
}

func TestGetScheduleMaterializesUserClasses(t *testing.T) {
	userID := uuid.New()
	repo := &fakeClassRepo{classes: []*types.Class{seededClass(userID, "CS101")}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	events, err := svc.GetSchedule(authedContext(userID), nil)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("want materialized events, got none")
	}
	foundMeeting := false
	for _, ev := range events {
		if ev.Type == "meeting" {
			foundMeeting = true
		}
		if ev.Class != "CS101" {
			t.Fatalf("event class: want=CS101 got=%q", ev.Class)
		}
	}
	if !foundMeeting {
		t.Fatalf("expected at least one meeting occurrence")
	}
}

func TestGetScheduleRequiresRequestData(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	if _, err := svc.GetSchedule(context.Background(), nil); err == nil {
		t.Fatalf("want error without request data")
	}
}

func TestAddEventWeeklyRepeatPersistsEightEvents(t *testing.T) {
	userID := uuid.New()
	class := seededClass(userID, "CS101")
	repo := &fakeClassRepo{classes: []*types.Class{class}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	added, err := svc.AddEvent(authedContext(userID), nil, AddEventInput{
		ClassID: class.ID.String(),
		Title:   "Office hours",
		Start:   "2025-09-10T14:00",
		End:     "2025-09-10T15:00",
		Type:    "custom",
		Repeat:  "weekly",
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if len(added) != 8 {
		t.Fatalf("added: want=8 got=%d", len(added))
	}
	persisted := repo.replaced[class.ID]
	if len(persisted) != 8 {
		t.Fatalf("persisted: want=8 got=%d", len(persisted))
	}
	for _, ev := range added {
		if ev.Class != "CS101" {
			t.Fatalf("event class: want=CS101 got=%q", ev.Class)
		}
		if ev.Origin != "custom" {
			t.Fatalf("origin: want=custom got=%q", ev.Origin)
		}
		if ev.Color == "" || ev.DotColor == "" {
			t.Fatalf("expected color tagging, got color=%q dot=%q", ev.Color, ev.DotColor)
		}
	}
}

func TestAddEventDefaultsToFirstClass(t *testing.T) {
	userID := uuid.New()
	first := seededClass(userID, "CS101")
	second := seededClass(userID, "MATH200")
	repo := &fakeClassRepo{classes: []*types.Class{first, second}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	added, err := svc.AddEvent(authedContext(userID), nil, AddEventInput{
		Title: "Gym",
		Start: "2025-09-12T17:00",
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("added: want=1 got=%d", len(added))
	}
	if _, ok := repo.replaced[first.ID]; !ok {
		t.Fatalf("expected event persisted to first class")
	}
	if added[0].Type != "custom" {
		t.Fatalf("type default: want=custom got=%q", added[0].Type)
	}
}

func TestAddEventNoClasses(t *testing.T) {
	userID := uuid.New()
	repo := &fakeClassRepo{}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	if _, err := svc.AddEvent(authedContext(userID), nil, AddEventInput{Title: "x", Start: "2025-09-12T17:00"}); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("want ErrClassNotFound, got %v", err)
	}
}

func TestDeleteEventRemovesMatchingID(t *testing.T) {
	userID := uuid.New()
	class := seededClass(userID, "CS101")
	keep := types.CustomEvent{ID: uuid.NewString(), Title: "keep", Start: "2025-09-10T14:00:00", Type: "custom"}
	drop := types.CustomEvent{ID: uuid.NewString(), Title: "drop", Start: "2025-09-11T14:00:00", Type: "custom"}
	class.CustomEvents = []types.CustomEvent{keep, drop}
	repo := &fakeClassRepo{classes: []*types.Class{class}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	if err := svc.DeleteEvent(authedContext(userID), nil, drop.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	persisted := repo.replaced[class.ID]
	if len(persisted) != 1 {
		t.Fatalf("persisted: want=1 got=%d", len(persisted))
	}
	if persisted[0].ID != keep.ID {
		t.Fatalf("kept wrong event: %q", persisted[0].ID)
	}
}

func TestDeleteEventUnknownID(t *testing.T) {
	userID := uuid.New()
	class := seededClass(userID, "CS101")
	repo := &fakeClassRepo{classes: []*types.Class{class}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	err := svc.DeleteEvent(authedContext(userID), nil, uuid.NewString())
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("want ErrEventNotFound, got %v", err)
	}
	if len(repo.replaced) != 0 {
		t.Fatalf("no writes expected, got %d", len(repo.replaced))
	}
}

func TestAddEventSerializedPerUser(t *testing.T) {
	userID := uuid.New()
	class := seededClass(userID, "CS101")
	repo := &fakeClassRepo{classes: []*types.Class{class}}
	svc := NewScheduleService(nil, testLogger(t), repo, NewUserLockRegistry())

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.AddEvent(authedContext(userID), nil, AddEventInput{
				Title: "Session",
				Start: "2025-09-12T17:00",
			})
			done <- err
		}()
	}
	for i := 0; i < 2; i++ {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("concurrent AddEvent: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("concurrent AddEvent deadlocked")
		}
	}
}
