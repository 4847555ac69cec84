package types

// Meeting is a weekly recurring class slot. It carries no dates of its
// own; occurrences are derived from the owning class's term range.
type Meeting struct {
  Type      string  `json:"type,omitempty"`
  Day       string  `json:"day"`
  StartTime string  `json:"start_time"`
  EndTime   string  `json:"end_time,omitempty"`
  Location  string  `json:"location,omitempty"`
}

type Assignment struct {
  Title   string   `json:"title"`
  Weight  *float64 `json:"weight,omitempty"`
  DueDate string   `json:"due_date,omitempty"`
  Start   string   `json:"start,omitempty"`
  Details string   `json:"details,omitempty"`
}

type Exam struct {
  Title   string   `json:"title"`
  Weight  *float64 `json:"weight,omitempty"`
  Date    string   `json:"date,omitempty"`
  Start   string   `json:"start,omitempty"`
  Details string   `json:"details,omitempty"`
}

// CustomEvent is a user- or AI-created event persisted on its class.
// Origin is "custom" or "ai"; generated events never take this form.
type CustomEvent struct {
  ID        string  `json:"id"`
  Title     string  `json:"title"`
  Start     string  `json:"start"`
  End       string  `json:"end,omitempty"`
  Type      string  `json:"type"`
  Repeat    string  `json:"repeat,omitempty"`
  Color     string  `json:"color,omitempty"`
  TextColor string  `json:"textColor,omitempty"`
  DotColor  string  `json:"dotColor,omitempty"`
  Class     string  `json:"class,omitempty"`
  Origin    string  `json:"origin,omitempty"`
}

// MaterializedEvent is the wire shape consumed by the calendar UI. It is
// rebuilt on every materialization call and never persisted as-is.
type MaterializedEvent struct {
  ID        string  `json:"id"`
  Title     string  `json:"title"`
  Start     string  `json:"start"`
  End       string  `json:"end,omitempty"`
  Type      string  `json:"type"`
  Repeat    string  `json:"repeat,omitempty"`
  Color     string  `json:"color"`
  DotColor  string  `json:"dotColor"`
  TextColor string  `json:"textColor"`
  Class     string  `json:"class"`
  Origin    string  `json:"origin"`
}
