package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/repos"
  "github.com/classcal/classcal-backend/internal/requestdata"
  "github.com/classcal/classcal-backend/internal/types"
)

// ClassSummary is the list-view shape: per-collection counts instead of the
// full nested syllabus data.
type ClassSummary struct {
  ID               uuid.UUID `json:"id"`
  Title            string    `json:"title"`
  Code             string    `json:"code"`
  Instructor       string    `json:"instructor"`
  Term             string    `json:"term"`
  MeetingsCount    int       `json:"meetings_count"`
  AssignmentsCount int       `json:"assignments_count"`
  ExamsCount       int       `json:"exams_count"`
}

type ClassService interface {
  CreateClass(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error)
  ListClasses(ctx context.Context, tx *gorm.DB) ([]ClassSummary, error)
  UpdateClass(ctx context.Context, tx *gorm.DB, classID uuid.UUID, updated *types.Class) error
  DeleteClass(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error
}

type classService struct {
  db        *gorm.DB
  log       *logger.Logger
  classRepo repos.ClassRepo
}

func NewClassService(db *gorm.DB, baseLog *logger.Logger, classRepo repos.ClassRepo) ClassService {
  serviceLog := baseLog.With("service", "ClassService")
  return &classService{db: db, log: serviceLog, classRepo: classRepo}
}

func (cs *classService) CreateClass(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("request data not set in context")
  }

  class.ID = uuid.New()
  class.UserID = rd.UserID
  if class.CustomEvents == nil {
    class.CustomEvents = []types.CustomEvent{}
  }

  if _, err := cs.classRepo.Create(ctx, tx, []*types.Class{class}); err != nil {
    cs.log.Error("CreateClass failed", "error", err, "user_id", rd.UserID)
    return nil, fmt.Errorf("create class: %w", err)
  }
  return class, nil
}

func (cs *classService) ListClasses(ctx context.Context, tx *gorm.DB) ([]ClassSummary, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("request data not set in context")
  }

  classes, err := cs.classRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    cs.log.Error("ListClasses failed", "error", err, "user_id", rd.UserID)
    return nil, fmt.Errorf("list classes: %w", err)
  }

  out := make([]ClassSummary, 0, len(classes))
  for _, c := range classes {
    out = append(out, ClassSummary{
      ID:               c.ID,
      Title:            c.Title,
      Code:             c.Code,
      Instructor:       c.Instructor,
      Term:             c.Term,
      MeetingsCount:    len(c.Meetings),
      AssignmentsCount: len(c.Assignments),
      ExamsCount:       len(c.Exams),
    })
  }
  return out, nil
}

func (cs *classService) UpdateClass(ctx context.Context, tx *gorm.DB, classID uuid.UUID, updated *types.Class) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("request data not set in context")
  }

  classes, err := cs.classRepo.GetByIDs(ctx, tx, []uuid.UUID{classID})
  if err != nil {
    return fmt.Errorf("load class: %w", err)
  }
  if len(classes) == 0 || classes[0].UserID != rd.UserID {
    return ErrClassNotFound
  }
  class := classes[0]

  if updated.Title != "" {
    class.Title = updated.Title
  }
  if updated.Code != "" {
    class.Code = updated.Code
  }
  if updated.Instructor != "" {
    class.Instructor = updated.Instructor
  }
  if updated.Term != "" {
    class.Term = updated.Term
  }
  if updated.Location != "" {
    class.Location = updated.Location
  }
  if updated.Notes != "" {
    class.Notes = updated.Notes
  }
  if updated.GradingPolicy != "" {
    class.GradingPolicy = updated.GradingPolicy
  }
  if updated.Meetings != nil {
    class.Meetings = updated.Meetings
  }
  if updated.Assignments != nil {
    class.Assignments = updated.Assignments
  }
  if updated.Exams != nil {
    class.Exams = updated.Exams
  }

  if err := cs.classRepo.Update(ctx, tx, class); err != nil {
    cs.log.Error("UpdateClass failed", "error", err, "class_id", classID)
    return fmt.Errorf("update class: %w", err)
  }
  return nil
}

func (cs *classService) DeleteClass(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("request data not set in context")
  }

  deleted, err := cs.classRepo.Delete(ctx, tx, classID, rd.UserID)
  if err != nil {
    cs.log.Error("DeleteClass failed", "error", err, "class_id", classID)
    return fmt.Errorf("delete class: %w", err)
  }
  if !deleted {
    return ErrClassNotFound
  }
  return nil
}
