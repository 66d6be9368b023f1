package onboarding

import (
	"testing"

	"github.com/google/uuid"
)

func TestReviewGroupsAnsweredFields(t *testing.T) {
	cat := DefaultCatalog()
	s := reviewedSession(t, cat)

	sections := s.Review(cat)
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}
	if sections[0].Title != "Informations personnelles" {
		t.Errorf("first section = %q", sections[0].Title)
	}

	byField := map[string]ReviewItem{}
	for _, sec := range sections {
		for _, item := range sec.Items {
			byField[item.Field] = item
		}
	}

	if item := byField["skills"]; item.Value != "React, Node.js" || !item.Answered {
		t.Errorf("skills item = %+v", item)
	}
	// Visited-but-skipped shows up unanswered with an empty value.
	if item, ok := byField["linkedin_url"]; !ok || item.Answered || item.Value != "" {
		t.Errorf("linkedin_url item = %+v", item)
	}
}

func TestReviewOmitsUnreachedFields(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)
	if err := s.SubmitAnswer(cat, Answer{Text: "Paul"}, testNow); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	sections := s.Review(cat)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want only the one with an answer", len(sections))
	}
	if len(sections[0].Items) != 1 || sections[0].Items[0].Field != "first_name" {
		t.Errorf("items = %+v", sections[0].Items)
	}
}

func TestReviewNilSession(t *testing.T) {
	var s *Session
	if got := s.Review(DefaultCatalog()); got != nil {
		t.Errorf("nil session review = %v, want nil", got)
	}
}
