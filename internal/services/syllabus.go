package services

import (
  "context"
  "encoding/json"
  "strings"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/types"
)

// ClassDraft is the structured result of syllabus extraction, ready to be
// reviewed by the user before becoming a class.
type ClassDraft struct {
  Title       string             `json:"title"`
  Term        string             `json:"term"`
  Instructor  string             `json:"instructor"`
  Assignments []types.Assignment `json:"assignments"`
  Exams       []types.Exam       `json:"exams"`
  Notes       string             `json:"notes"`
}

type SyllabusService interface {
  ParseSyllabus(ctx context.Context, text string) (*ClassDraft, error)
}

type syllabusService struct {
  log *logger.Logger
  ai  OpenAIClient
}

func NewSyllabusService(baseLog *logger.Logger, ai OpenAIClient) SyllabusService {
  serviceLog := baseLog.With("service", "SyllabusService")
  return &syllabusService{log: serviceLog, ai: ai}
}

// minSyllabusLen guards against running extraction on scraps of text that
// cannot possibly describe a course.
const minSyllabusLen = 100

// maxSyllabusLen bounds the prompt size for very long documents.
const maxSyllabusLen = 15000

var syllabusSchema = map[string]any{
  "type": "object",
  "properties": map[string]any{
    "title":      map[string]any{"type": []string{"string", "null"}},
    "term":       map[string]any{"type": []string{"string", "null"}},
    "instructor": map[string]any{"type": []string{"string", "null"}},
    "assignments": map[string]any{
      "type": "array",
      "items": map[string]any{
        "type": "object",
        "properties": map[string]any{
          "title":    map[string]any{"type": "string"},
          "weight":   map[string]any{"type": []string{"number", "null"}},
          "due_date": map[string]any{"type": []string{"string", "null"}},
          "details":  map[string]any{"type": []string{"string", "null"}},
        },
        "required":             []string{"title", "weight", "due_date", "details"},
        "additionalProperties": false,
      },
    },
    "exams": map[string]any{
      "type": "array",
      "items": map[string]any{
        "type": "object",
        "properties": map[string]any{
          "title":   map[string]any{"type": "string"},
          "weight":  map[string]any{"type": []string{"number", "null"}},
          "date":    map[string]any{"type": []string{"string", "null"}},
          "details": map[string]any{"type": []string{"string", "null"}},
        },
        "required":             []string{"title", "weight", "date", "details"},
        "additionalProperties": false,
      },
    },
    "notes": map[string]any{"type": []string{"string", "null"}},
  },
  "required":             []string{"title", "term", "instructor", "assignments", "exams", "notes"},
  "additionalProperties": false,
}

const syllabusSystemPrompt = "You are an AI that extracts structured information from university course syllabi. " +
  "Return ONLY valid JSON - no markdown, no commentary."

const syllabusUserPrompt = `Extract all useful class information. Weights are the
percent of the total grade: if a weight is written like "15%" return 15, and
return null when unknown. Dates stay as written in the document. Try to infer
title/term/instructor from header blocks if not explicit.
Syllabus text:
`

// ParseSyllabus turns raw syllabus text into a ClassDraft. Extraction is best
// effort: text too short to be a syllabus, or a model reply that does not
// decode, both yield an empty draft rather than an error.
func (sv *syllabusService) ParseSyllabus(ctx context.Context, text string) (*ClassDraft, error) {
  trimmed := strings.TrimSpace(text)
  if len(trimmed) < minSyllabusLen {
    sv.log.Warn("Syllabus text too short, returning empty draft", "length", len(trimmed))
    return &ClassDraft{Assignments: []types.Assignment{}, Exams: []types.Exam{}}, nil
  }
  if len(trimmed) > maxSyllabusLen {
    trimmed = trimmed[:maxSyllabusLen]
  }

  obj, err := sv.ai.GenerateJSON(ctx, syllabusSystemPrompt, syllabusUserPrompt+trimmed, "syllabus_extraction", syllabusSchema)
  if err != nil {
    sv.log.Error("Syllabus extraction call failed", "error", err)
    return nil, err
  }

  draft, ok := decodeDraft(obj)
  if !ok {
    sv.log.Warn("Syllabus extraction returned malformed JSON, returning empty draft")
    return &ClassDraft{Assignments: []types.Assignment{}, Exams: []types.Exam{}}, nil
  }

  sv.log.Info("Parsed syllabus", "assignments", len(draft.Assignments), "exams", len(draft.Exams))
  return draft, nil
}

func decodeDraft(obj map[string]any) (*ClassDraft, bool) {
  payload, err := json.Marshal(obj)
  if err != nil {
    return nil, false
  }
  var draft ClassDraft
  if err := json.Unmarshal(payload, &draft); err != nil {
    return nil, false
  }
  if draft.Assignments == nil {
    draft.Assignments = []types.Assignment{}
  }
  if draft.Exams == nil {
    draft.Exams = []types.Exam{}
  }
  return &draft, true
}
