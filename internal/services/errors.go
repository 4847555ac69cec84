package services

import "errors"

var (
  ErrClassNotFound = errors.New("class not found")
  // ErrEventNotFound also covers generated-origin ids: those events are
  // recomputed on every materialization and are not deletable.
  ErrEventNotFound = errors.New("event not found or not deletable")
)
