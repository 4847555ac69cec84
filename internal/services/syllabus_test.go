package services

import (
	"context"
	"strings"
	"testing"
)

func TestParseSyllabusShortTextSkipsModel(t *testing.T) {
	ai := &fakeAIClient{}
	svc := NewSyllabusService(testLogger(t), ai)

	draft, err := svc.ParseSyllabus(context.Background(), "too short")
	if err != nil {
		t.Fatalf("ParseSyllabus: %v", err)
	}
	if ai.calls != 0 {
		t.Fatalf("model should not be called, got %d calls", ai.calls)
	}
	if draft.Title != "" || len(draft.Assignments) != 0 || len(draft.Exams) != 0 {
		t.Fatalf("want empty draft, got %+v", draft)
	}
}

func TestParseSyllabusDecodesDraft(t *testing.T) {
	ai := &fakeAIClient{response: map[string]any{
		"title":      "Intro to Computer Science",
		"term":       "Fall 2025",
		"instructor": "Dr. Okafor",
		"assignments": []any{
			map[string]any{"title": "Homework 1", "weight": 10.0, "due_date": "Sept 15", "details": nil},
		},
		"exams": []any{
			map[string]any{"title": "Final Exam", "weight": 40.0, "date": "Dec 12", "details": nil},
		},
		"notes": "Attendance counts.",
	}}
	svc := NewSyllabusService(testLogger(t), ai)

	text := strings.Repeat("CS101 Fall 2025 syllabus. ", 10)
	draft, err := svc.ParseSyllabus(context.Background(), text)
	if err != nil {
		t.Fatalf("ParseSyllabus: %v", err)
	}
	if draft.Title != "Intro to Computer Science" || draft.Term != "Fall 2025" {
		t.Fatalf("header fields: %+v", draft)
	}
	if len(draft.Assignments) != 1 || draft.Assignments[0].DueDate != "Sept 15" {
		t.Fatalf("assignments: %+v", draft.Assignments)
	}
	if draft.Assignments[0].Weight == nil || *draft.Assignments[0].Weight != 10 {
		t.Fatalf("assignment weight: %+v", draft.Assignments[0].Weight)
	}
	if len(draft.Exams) != 1 || draft.Exams[0].Date != "Dec 12" {
		t.Fatalf("exams: %+v", draft.Exams)
	}
}

func TestParseSyllabusMalformedReplyDegrades(t *testing.T) {
	ai := &fakeAIClient{response: map[string]any{
		"title":       "CS101",
		"assignments": "not a list",
	}}
	svc := NewSyllabusService(testLogger(t), ai)

	text := strings.Repeat("CS101 Fall 2025 syllabus. ", 10)
	draft, err := svc.ParseSyllabus(context.Background(), text)
	if err != nil {
		t.Fatalf("ParseSyllabus: %v", err)
	}
	if draft.Title != "" || len(draft.Assignments) != 0 {
		t.Fatalf("want empty draft on malformed reply, got %+v", draft)
	}
}
