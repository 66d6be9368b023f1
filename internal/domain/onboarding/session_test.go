package onboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// answersInCatalogOrder covers every question in the default catalog, in
// order, with remote_preference set so preferred_locations is asked too.
var answersInCatalogOrder = []struct {
	field string
	ans   Answer
}{
	{"first_name", Answer{Text: "Paul"}},
	{"last_name", Answer{Text: "Biya"}},
	{"email", Answer{Text: "paul@example.com"}},
	{"phone", Answer{Text: "+237 670000000"}},
	{"location", Answer{Text: "Douala"}},
	{"current_title", Answer{Text: "Développeur web"}},
	{"years_experience", Answer{Text: "3"}},
	{"education_level", Answer{Text: "Bac+5 / Master"}},
	{"skills", Answer{Choices: []string{"React", "Node.js"}}},
	{"languages", Answer{}},
	{"job_type", Answer{Text: "CDI"}},
	{"remote_preference", Answer{Text: "Hybride"}},
	{"preferred_locations", Answer{Choices: []string{"Douala", "Yaoundé"}}},
	{"min_salary", Answer{Text: "250000"}},
	{"availability", Answer{Text: "Immédiatement"}},
	{"linkedin_url", Answer{}},
	{"portfolio_url", Answer{}},
	{"summary", Answer{Text: "Développeur passionné basé à Douala."}},
}

func TestNewSessionStartsAtFirstQuestion(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)

	if s.Phase.Kind != PhaseAsking || s.Phase.Step != 0 {
		t.Fatalf("new session phase = %+v, want asking step 0", s.Phase)
	}
	q, ok := s.CurrentQuestion(cat)
	if !ok || q.Field != "first_name" {
		t.Fatalf("first question = %q, want first_name", q.Field)
	}
	if len(s.Transcript) < 3 {
		t.Fatalf("transcript should open with welcome lines and the first prompt, got %d messages", len(s.Transcript))
	}
	last := s.Transcript[len(s.Transcript)-1]
	if last.Role != RoleBot || last.Text != q.Prompt {
		t.Errorf("last transcript entry = %+v, want the first prompt", last)
	}
}

func TestFullFlowEndsInReview(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)

	for i, step := range answersInCatalogOrder {
		q, ok := s.CurrentQuestion(cat)
		if !ok {
			t.Fatalf("step %d: no current question, phase %+v", i, s.Phase)
		}
		if q.Field != step.field {
			t.Fatalf("step %d: asking %q, want %q", i, q.Field, step.field)
		}
		if err := s.SubmitAnswer(cat, step.ans, testNow); err != nil {
			t.Fatalf("step %d (%s): %v", i, step.field, err)
		}
	}

	if s.Phase.Kind != PhaseReviewing {
		t.Fatalf("after last answer phase = %+v, want reviewing", s.Phase)
	}
	if len(s.Draft) != cat.Len() {
		t.Errorf("draft has %d fields, want %d", len(s.Draft), cat.Len())
	}
	// Visited-and-skipped optionals stay in the draft as explicit empties.
	if ans, ok := s.Draft["linkedin_url"]; !ok || !ans.IsEmpty() {
		t.Errorf("skipped linkedin_url = %+v, want an explicit empty entry", ans)
	}
	last := s.Transcript[len(s.Transcript)-1]
	if last.Role != RoleBot || last.Text != reviewIntro {
		t.Errorf("review should be announced on the transcript, got %+v", last)
	}
}

func TestDependencySkipsPreferredLocations(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)

	for _, step := range answersInCatalogOrder {
		ans := step.ans
		if step.field == "remote_preference" {
			ans = Answer{Text: "Télétravail complet"}
		}
		if step.field == "preferred_locations" {
			continue
		}
		q, _ := s.CurrentQuestion(cat)
		if q.Field == "preferred_locations" {
			t.Fatalf("preferred_locations asked despite full-remote preference")
		}
		if err := s.SubmitAnswer(cat, ans, testNow); err != nil {
			t.Fatalf("%s: %v", step.field, err)
		}
	}

	if s.Phase.Kind != PhaseReviewing {
		t.Fatalf("phase = %+v, want reviewing", s.Phase)
	}
	if _, ok := s.Draft["preferred_locations"]; ok {
		t.Errorf("skipped dependent question should not appear in the draft")
	}
}

func TestSubmitAnswerRejectsInvalidAndStays(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)

	err := s.SubmitAnswer(cat, Answer{Text: "   "}, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if s.Phase.Kind != PhaseAsking || s.Phase.Step != 0 {
		t.Errorf("rejected answer must not advance, phase = %+v", s.Phase)
	}
	if len(s.Draft) != 0 {
		t.Errorf("rejected answer must not touch the draft")
	}
}

func TestEditInReviewUpdatesOnlyThatField(t *testing.T) {
	cat := DefaultCatalog()
	s := reviewedSession(t, cat)

	if err := s.BeginEdit(cat, "first_name", testNow); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	if s.Phase.Kind != PhaseEditing || s.Phase.Field != "first_name" {
		t.Fatalf("phase = %+v, want editing first_name", s.Phase)
	}

	before := make(Draft, len(s.Draft))
	for k, v := range s.Draft {
		before[k] = v
	}

	if err := s.SubmitAnswer(cat, Answer{Text: "Jean"}, testNow); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Phase.Kind != PhaseReviewing {
		t.Fatalf("after edit phase = %+v, want reviewing", s.Phase)
	}
	if got := s.Draft["first_name"].Text; got != "Jean" {
		t.Errorf("first_name = %q, want Jean", got)
	}
	for field, old := range before {
		if field == "first_name" {
			continue
		}
		got := s.Draft[field]
		if got.Text != old.Text || len(got.Choices) != len(old.Choices) {
			t.Errorf("%s changed during edit: %+v -> %+v", field, old, got)
		}
	}
}

func TestBeginEditRejectsUnknownField(t *testing.T) {
	cat := DefaultCatalog()
	s := reviewedSession(t, cat)

	if err := s.BeginEdit(cat, "favorite_color", testNow); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
}

func TestBeginEditOutsideReviewFails(t *testing.T) {
	cat := DefaultCatalog()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)

	if err := s.BeginEdit(cat, "first_name", testNow); !errors.Is(err, ErrNotReviewing) {
		t.Fatalf("err = %v, want ErrNotReviewing", err)
	}
}

func TestBackReturnsToLastAskableStep(t *testing.T) {
	cat := DefaultCatalog()
	s := reviewedSession(t, cat)

	if err := s.Back(cat, testNow); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.Phase.Kind != PhaseAsking {
		t.Fatalf("phase = %+v, want asking", s.Phase)
	}
	q, _ := s.CurrentQuestion(cat)
	if q.Field != "summary" {
		t.Errorf("Back lands on %q, want the last question", q.Field)
	}
	if len(s.Draft) != cat.Len() {
		t.Errorf("Back must keep the draft intact")
	}
}

func TestDependencySatisfied(t *testing.T) {
	dep := &Dependency{Field: "remote_preference", AnyOf: []string{"Sur site", "Hybride"}}
	q := Question{Field: "preferred_locations", DependsOn: dep}

	if DependencySatisfied(q, Draft{}) {
		t.Errorf("unanswered dependency should not be satisfied")
	}
	if DependencySatisfied(q, Draft{"remote_preference": {Text: "Télétravail complet"}}) {
		t.Errorf("value outside AnyOf should not satisfy")
	}
	if !DependencySatisfied(q, Draft{"remote_preference": {Text: "Hybride"}}) {
		t.Errorf("Hybride should satisfy")
	}
	if !DependencySatisfied(Question{Field: "email"}, Draft{}) {
		t.Errorf("a question without dependency is always askable")
	}
}

// reviewedSession walks the whole catalog and returns a session in review.
func reviewedSession(t *testing.T, cat Catalog) *Session {
	t.Helper()
	s := NewSession(cat, uuid.New(), "paul@example.com", testNow)
	for _, step := range answersInCatalogOrder {
		if err := s.SubmitAnswer(cat, step.ans, testNow); err != nil {
			t.Fatalf("%s: %v", step.field, err)
		}
	}
	if s.Phase.Kind != PhaseReviewing {
		t.Fatalf("setup: phase = %+v, want reviewing", s.Phase)
	}
	return s
}
