package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type Class struct {
  ID              uuid.UUID                         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID          uuid.UUID                         `gorm:"type:uuid;not null;index" json:"user_id"`
  User            *User                             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Title           string                            `gorm:"column:title" json:"title"`
  Code            string                            `gorm:"column:code" json:"code"`
  Instructor      string                            `gorm:"column:instructor" json:"instructor"`
  Term            string                            `gorm:"column:term" json:"term"`
  Location        string                            `gorm:"column:location" json:"location"`
  Notes           string                            `gorm:"column:notes;type:text" json:"notes"`
  GradingPolicy   string                            `gorm:"column:grading_policy;type:text" json:"grading_policy"`
  Meetings        datatypes.JSONSlice[Meeting]      `gorm:"column:meetings" json:"meetings"`
  Assignments     datatypes.JSONSlice[Assignment]   `gorm:"column:assignments" json:"assignments"`
  Exams           datatypes.JSONSlice[Exam]         `gorm:"column:exams" json:"exams"`
  CustomEvents    datatypes.JSONSlice[CustomEvent]  `gorm:"column:custom_events" json:"custom_events"`
  CreatedAt       time.Time                         `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt       time.Time                         `gorm:"not null;default:now()" json:"updated_at"`
}

func (Class) TableName() string {
  return "class"
}

// Label is the human-facing short identifier for a class: code, else
// title, else the literal "Class".
func (c *Class) Label() string {
  if c.Code != "" {
    return c.Code
  }
  if c.Title != "" {
    return c.Title
  }
  return "Class"
}
