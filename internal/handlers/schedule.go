package handlers

import (
  "errors"
  "io"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/classcal/classcal-backend/internal/services"
)

type ScheduleHandler struct {
  scheduleService services.ScheduleService
  plannerService  services.PlannerService
}

func NewScheduleHandler(scheduleService services.ScheduleService, plannerService services.PlannerService) *ScheduleHandler {
  return &ScheduleHandler{scheduleService: scheduleService, plannerService: plannerService}
}

func (sh *ScheduleHandler) Get(c *gin.Context) {
  events, err := sh.scheduleService.GetSchedule(c.Request.Context(), nil)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "get_schedule_failed", err)
    return
  }
  RespondOK(c, gin.H{"events": events})
}

func (sh *ScheduleHandler) Add(c *gin.Context) {
  var input services.AddEventInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  if input.Title == "" || input.Start == "" {
    RespondError(c, http.StatusBadRequest, "missing_fields", errors.New("title and start are required"))
    return
  }
  added, err := sh.scheduleService.AddEvent(c.Request.Context(), nil, input)
  if err != nil {
    if errors.Is(err, services.ErrClassNotFound) {
      RespondError(c, http.StatusNotFound, "class_not_found", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "add_event_failed", err)
    return
  }
  RespondOK(c, gin.H{"added": added})
}

func (sh *ScheduleHandler) Delete(c *gin.Context) {
  eventID := c.Param("event_id")
  if eventID == "" {
    RespondError(c, http.StatusBadRequest, "invalid_event_id", errors.New("event id required"))
    return
  }
  if err := sh.scheduleService.DeleteEvent(c.Request.Context(), nil, eventID); err != nil {
    if errors.Is(err, services.ErrEventNotFound) {
      RespondError(c, http.StatusNotFound, "event_not_found", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "delete_event_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

// Plan accepts an optional settings body; an empty body runs with defaults.
func (sh *ScheduleHandler) Plan(c *gin.Context) {
  var settings services.PlannerSettings
  if err := c.ShouldBindJSON(&settings); err != nil && !errors.Is(err, io.EOF) {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  result, err := sh.plannerService.Plan(c.Request.Context(), nil, settings)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "plan_failed", err)
    return
  }
  RespondOK(c, result)
}
