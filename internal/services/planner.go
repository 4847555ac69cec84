package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "strconv"
  "strings"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/repos"
  "github.com/classcal/classcal-backend/internal/requestdata"
  "github.com/classcal/classcal-backend/internal/schedule"
  "github.com/classcal/classcal-backend/internal/types"
)

// PlannerSettings mirrors the client's planner preferences. Hours arrive as
// "HH:MM" strings; only the hour component is honored.
type PlannerSettings struct {
  StartHour       string `json:"startHour"`
  EndHour         string `json:"endHour"`
  AvoidWeekends   *bool  `json:"avoidWeekends"`
  SessionsPerWeek int    `json:"sessionsPerWeek"`
}

type PlanResult struct {
  Success bool                `json:"success"`
  Message string              `json:"message"`
  Added   []types.CustomEvent `json:"added,omitempty"`
}

type PlannerService interface {
  Plan(ctx context.Context, tx *gorm.DB, settings PlannerSettings) (*PlanResult, error)
}

type plannerService struct {
  db        *gorm.DB
  log       *logger.Logger
  classRepo repos.ClassRepo
  ai        OpenAIClient
  locks     *userLockRegistry
}

func NewPlannerService(db *gorm.DB, baseLog *logger.Logger, classRepo repos.ClassRepo, ai OpenAIClient, locks *userLockRegistry) PlannerService {
  serviceLog := baseLog.With("service", "PlannerService")
  return &plannerService{db: db, log: serviceLog, classRepo: classRepo, ai: ai, locks: locks}
}

var planSchema = map[string]any{
  "type": "object",
  "properties": map[string]any{
    "events": map[string]any{
      "type": "array",
      "items": map[string]any{
        "type": "object",
        "properties": map[string]any{
          "title":      map[string]any{"type": "string"},
          "class_code": map[string]any{"type": "string"},
          "start":      map[string]any{"type": "string"},
          "end":        map[string]any{"type": "string"},
        },
        "required":             []string{"title", "class_code", "start", "end"},
        "additionalProperties": false,
      },
    },
  },
  "required":             []string{"events"},
  "additionalProperties": false,
}

// Plan asks the model for study sessions around the user's deadlines, runs
// every suggestion through the validation pipeline and persists only the
// accepted ones. Validation completes before any class row is written, so a
// failed write never leaves a half-applied plan behind on retry.
func (ps *plannerService) Plan(ctx context.Context, tx *gorm.DB, settings PlannerSettings) (*PlanResult, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("request data not set in context")
  }

  prefs := resolvePreferences(settings)
  now := time.Now()

  unlock := ps.locks.Lock(rd.UserID)
  defer unlock()

  classes, err := ps.classRepo.GetByUserIDs(ctx, tx, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, fmt.Errorf("load classes: %w", err)
  }
  if len(classes) == 0 {
    return &PlanResult{Success: false, Message: "No classes found."}, nil
  }

  var existing []types.CustomEvent
  for _, c := range classes {
    existing = append(existing, c.CustomEvents...)
  }

  deadlines := schedule.CollectDeadlines(classes, now)
  if len(deadlines) == 0 {
    return &PlanResult{Success: false, Message: "No due dates found to schedule around."}, nil
  }

  systemPrompt := buildPlanPrompt(settings, prefs, now)
  userSummary := buildDeadlineSummary(deadlines)

  ps.log.Info("Requesting study plan", "user_id", rd.UserID, "deadlines", len(deadlines))
  obj, err := ps.ai.GenerateJSON(ctx, systemPrompt, userSummary, "study_plan", planSchema)
  if err != nil {
    if errors.Is(err, ErrModelInvalidJSON) {
      ps.log.Warn("Planner returned non-JSON content", "error", err, "user_id", rd.UserID)
      return &PlanResult{Success: false, Message: "AI returned invalid JSON."}, nil
    }
    ps.log.Error("Planner model call failed", "error", err, "user_id", rd.UserID)
    return nil, fmt.Errorf("generate plan: %w", err)
  }

  raw, err := decodeSuggestions(obj)
  if err != nil {
    ps.log.Warn("Planner returned malformed events", "error", err, "user_id", rd.UserID)
    return &PlanResult{Success: false, Message: "AI returned invalid JSON."}, nil
  }

  accepted := schedule.ValidateSuggestions(raw, prefs, classes, existing, now)

  byLabel := make(map[string][]types.CustomEvent)
  for _, ev := range accepted {
    byLabel[ev.Class] = append(byLabel[ev.Class], ev)
  }
  for _, class := range classes {
    add, ok := byLabel[class.Label()]
    if !ok {
      continue
    }
    updated := append(append([]types.CustomEvent(nil), class.CustomEvents...), add...)
    if err := ps.classRepo.ReplaceCustomEvents(ctx, tx, class.ID, updated); err != nil {
      ps.log.Error("Plan failed to persist", "error", err, "class_id", class.ID)
      return nil, fmt.Errorf("persist plan: %w", err)
    }
  }

  ps.log.Info("Study plan applied", "user_id", rd.UserID, "suggested", len(raw), "added", len(accepted))
  return &PlanResult{
    Success: true,
    Message: fmt.Sprintf("Added %d new AI study/work sessions.", len(accepted)),
    Added:   accepted,
  }, nil
}

func resolvePreferences(settings PlannerSettings) schedule.Preferences {
  prefs := schedule.DefaultPreferences()
  if h, ok := parseHour(settings.StartHour); ok {
    prefs.StartHour = h
  }
  if h, ok := parseHour(settings.EndHour); ok {
    prefs.EndHour = h
  }
  if settings.AvoidWeekends != nil {
    prefs.AvoidWeekends = *settings.AvoidWeekends
  }
  if settings.SessionsPerWeek > 0 {
    prefs.SessionsPerWeek = settings.SessionsPerWeek
  }
  return prefs
}

func parseHour(s string) (int, bool) {
  s = strings.TrimSpace(s)
  if s == "" {
    return 0, false
  }
  if idx := strings.Index(s, ":"); idx >= 0 {
    s = s[:idx]
  }
  h, err := strconv.Atoi(s)
  if err != nil || h < 0 || h > 23 {
    return 0, false
  }
  return h, true
}

func buildPlanPrompt(settings PlannerSettings, prefs schedule.Preferences, now time.Time) string {
  startStr := settings.StartHour
  if startStr == "" {
    startStr = fmt.Sprintf("%02d:00", prefs.StartHour)
  }
  endStr := settings.EndHour
  if endStr == "" {
    endStr = fmt.Sprintf("%02d:00", prefs.EndHour)
  }

  var b strings.Builder
  b.WriteString("You are a university scheduling assistant that plans study/work sessions for students.\n")
  fmt.Fprintf(&b, "Today's date is %s. Use the *exact year* shown in the deadlines below.\n", now.Format("2006-01-02T15:04:05"))
  fmt.Fprintf(&b, "Study sessions must be between %s and %s local time. ", startStr, endStr)
  fmt.Fprintf(&b, "Schedule about %d sessions per week per course, evenly spaced before each deadline. ", prefs.SessionsPerWeek)
  if prefs.AvoidWeekends {
    b.WriteString("Avoid weekends completely. ")
  }
  b.WriteString("Output STRICT JSON with no extra commentary in this schema:\n")
  b.WriteString(`{ "events": [ { "title": "string", "class_code": "string", "start": "YYYY-MM-DDTHH:MM:SS", "end": "YYYY-MM-DDTHH:MM:SS" } ] }` + "\n")
  b.WriteString("Ensure start < end and all events are ON OR BEFORE the corresponding deadline (not after).")
  return b.String()
}

func buildDeadlineSummary(deadlines []schedule.Deadline) string {
  lines := make([]string, 0, len(deadlines))
  for _, d := range deadlines {
    lines = append(lines, fmt.Sprintf("%s %s '%s' due %s", d.Class, d.Kind, d.Title, d.Date))
  }
  return strings.Join(lines, "\n")
}

func decodeSuggestions(obj map[string]any) ([]schedule.RawSuggestion, error) {
  payload, err := json.Marshal(obj)
  if err != nil {
    return nil, err
  }
  var decoded struct {
    Events []schedule.RawSuggestion `json:"events"`
  }
  if err := json.Unmarshal(payload, &decoded); err != nil {
    return nil, err
  }
  return decoded.Events, nil
}
