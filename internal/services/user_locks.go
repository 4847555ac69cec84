package services

import (
  "sync"
  "github.com/google/uuid"
)

// userLockRegistry serializes mutations per user. Materialization is a pure
// read, but event acceptance is read-then-append over a user's custom-event
// collections, so two concurrent writers could double-book a slot. One
// in-flight mutation per user at a time.
type userLockRegistry struct {
  locks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewUserLockRegistry() *userLockRegistry {
  return &userLockRegistry{}
}

func (r *userLockRegistry) Lock(userID uuid.UUID) func() {
  actual, _ := r.locks.LoadOrStore(userID, &sync.Mutex{})
  mu := actual.(*sync.Mutex)
  mu.Lock()
  return mu.Unlock
}
