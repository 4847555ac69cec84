package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/types"
)

type ClassRepo interface {
  Create(ctx context.Context, tx *gorm.DB, classes []*types.Class) ([]*types.Class, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, classIDs []uuid.UUID) ([]*types.Class, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Class, error)
  Update(ctx context.Context, tx *gorm.DB, class *types.Class) error
  Delete(ctx context.Context, tx *gorm.DB, classID, userID uuid.UUID) (bool, error)
  ReplaceCustomEvents(ctx context.Context, tx *gorm.DB, classID uuid.UUID, events []types.CustomEvent) error
}

type classRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClassRepo(db *gorm.DB, baseLog *logger.Logger) ClassRepo {
  repoLog := baseLog.With("repo", "ClassRepo")
  return &classRepo{db: db, log: repoLog}
}

func (cr *classRepo) Create(ctx context.Context, tx *gorm.DB, classes []*types.Class) ([]*types.Class, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(classes) == 0 {
    return []*types.Class{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&classes).Error; err != nil {
    return nil, err
  }
  return classes, nil
}

func (cr *classRepo) GetByIDs(ctx context.Context, tx *gorm.DB, classIDs []uuid.UUID) ([]*types.Class, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Class
  if len(classIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", classIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *classRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Class, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Class
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *classRepo) Update(ctx context.Context, tx *gorm.DB, class *types.Class) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  return transaction.WithContext(ctx).Save(class).Error
}

func (cr *classRepo) Delete(ctx context.Context, tx *gorm.DB, classID, userID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", classID, userID).
    Delete(&types.Class{})
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected > 0, nil
}

// ReplaceCustomEvents swaps a class's whole custom-event collection. The
// collection is an owned JSON column, so callers hand over the full new
// list rather than mutating in place.
func (cr *classRepo) ReplaceCustomEvents(ctx context.Context, tx *gorm.DB, classID uuid.UUID, events []types.CustomEvent) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if events == nil {
    events = []types.CustomEvent{}
  }

  return transaction.WithContext(ctx).
    Model(&types.Class{}).
    Where("id = ?", classID).
    Update("custom_events", datatypes.NewJSONSlice(events)).Error
}
