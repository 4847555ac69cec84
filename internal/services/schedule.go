package services

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/repos"
  "github.com/classcal/classcal-backend/internal/requestdata"
  "github.com/classcal/classcal-backend/internal/schedule"
  "github.com/classcal/classcal-backend/internal/types"
)

// AddEventInput is the caller's shape for a new custom event. ClassID picks
// the class to attach to; when absent the user's first class is used.
type AddEventInput struct {
  ClassID string `json:"class_id"`
  Title   string `json:"title"`
  Start   string `json:"start"`
  End     string `json:"end"`
  Type    string `json:"type"`
  Repeat  string `json:"repeat"`
}

type ScheduleService interface {
  GetSchedule(ctx context.Context, tx *gorm.DB) ([]types.MaterializedEvent, error)
  AddEvent(ctx context.Context, tx *gorm.DB, input AddEventInput) ([]types.CustomEvent, error)
  DeleteEvent(ctx context.Context, tx *gorm.DB, eventID string) error
}

type scheduleService struct {
  db        *gorm.DB
  log       *logger.Logger
  classRepo repos.ClassRepo
  locks     *userLockRegistry
}

func NewScheduleService(db *gorm.DB, baseLog *logger.Logger, classRepo repos.ClassRepo, locks *userLockRegistry) ScheduleService {
  serviceLog := baseLog.With("service", "ScheduleService")
  return &scheduleService{db: db, log: serviceLog, classRepo: classRepo, locks: locks}
}

// GetSchedule materializes the caller's full event timeline. Pure read: the
// generated events are recomputed from stored class state on every call.
func (ss *scheduleService) GetSchedule(ctx context.Context, tx *gorm.DB) ([]types.MaterializedEvent, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("request data not set in context")
  }

  classes, err := ss.classRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    ss.log.Error("GetSchedule failed to load classes", "error", err, "user_id", rd.UserID)
    return nil, fmt.Errorf("load classes: %w", err)
  }

  return schedule.Materialize(classes, time.Now()), nil
}

func (ss *scheduleService) AddEvent(ctx context.Context, tx *gorm.DB, input AddEventInput) ([]types.CustomEvent, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("request data not set in context")
  }

  unlock := ss.locks.Lock(rd.UserID)
  defer unlock()

  classes, err := ss.classRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, fmt.Errorf("load classes: %w", err)
  }

  class := pickClass(classes, input.ClassID)
  if class == nil {
    return nil, ErrClassNotFound
  }

  label := class.Label()
  eventType := input.Type
  if eventType == "" {
    eventType = "custom"
  }
  repeat := input.Repeat
  if repeat == "" {
    repeat = "none"
  }

  base := types.CustomEvent{
    ID:        uuid.NewString(),
    Title:     input.Title,
    Start:     schedule.EnsureTimestamp(input.Start),
    Type:      eventType,
    Repeat:    repeat,
    Color:     schedule.ClassColor(label),
    TextColor: "#ffffff",
    DotColor:  schedule.DotColor(eventType),
    Class:     label,
    Origin:    "custom",
  }
  if input.End != "" {
    base.End = schedule.EnsureTimestamp(input.End)
  }

  toAdd := schedule.ExpandRepeat(base)

  updated := append(append([]types.CustomEvent(nil), class.CustomEvents...), toAdd...)
  if err := ss.classRepo.ReplaceCustomEvents(ctx, tx, class.ID, updated); err != nil {
    ss.log.Error("AddEvent failed to persist", "error", err, "class_id", class.ID)
    return nil, fmt.Errorf("persist events: %w", err)
  }

  ss.log.Info("Added custom events", "user_id", rd.UserID, "class_id", class.ID, "count", len(toAdd))
  return toAdd, nil
}

// DeleteEvent removes a persisted custom/ai event by id. Generated events
// are not stored anywhere, so their ids fall through to ErrEventNotFound.
func (ss *scheduleService) DeleteEvent(ctx context.Context, tx *gorm.DB, eventID string) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("request data not set in context")
  }

  unlock := ss.locks.Lock(rd.UserID)
  defer unlock()

  classes, err := ss.classRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    return fmt.Errorf("load classes: %w", err)
  }

  found := false
  for _, class := range classes {
    kept := make([]types.CustomEvent, 0, len(class.CustomEvents))
    for _, ev := range class.CustomEvents {
      if ev.ID == eventID {
        continue
      }
      kept = append(kept, ev)
    }
    if len(kept) == len(class.CustomEvents) {
      continue
    }
    if err := ss.classRepo.ReplaceCustomEvents(ctx, tx, class.ID, kept); err != nil {
      ss.log.Error("DeleteEvent failed to persist", "error", err, "class_id", class.ID)
      return fmt.Errorf("persist events: %w", err)
    }
    found = true
  }

  if !found {
    return ErrEventNotFound
  }
  ss.log.Info("Deleted custom event", "user_id", rd.UserID, "event_id", eventID)
  return nil
}

func pickClass(classes []*types.Class, classID string) *types.Class {
  if classID != "" {
    if id, err := uuid.Parse(classID); err == nil {
      for _, c := range classes {
        if c.ID == id {
          return c
        }
      }
    }
  }
  if len(classes) > 0 {
    return classes[0]
  }
  return nil
}
