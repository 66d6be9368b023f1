package onboarding

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhaseKind names the three conversation modes.
type PhaseKind string

const (
	PhaseAsking    PhaseKind = "asking"
	PhaseReviewing PhaseKind = "reviewing"
	PhaseEditing   PhaseKind = "editing"
)

// Phase is the tagged state of the conversation. Step is meaningful only for
// asking, Field only for editing; the constructors keep the pair consistent.
type Phase struct {
	Kind  PhaseKind `json:"kind"`
	Step  int       `json:"step,omitempty"`
	Field string    `json:"field,omitempty"`
}

func Asking(step int) Phase      { return Phase{Kind: PhaseAsking, Step: step} }
func Reviewing() Phase           { return Phase{Kind: PhaseReviewing} }
func Editing(field string) Phase { return Phase{Kind: PhaseEditing, Field: field} }

// Answer is one submitted value: Text for scalar kinds, Choices for
// multi-select.
type Answer struct {
	Text    string   `json:"text,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

func (a Answer) IsEmpty() bool {
	if len(a.Choices) > 0 {
		for _, c := range a.Choices {
			if strings.TrimSpace(c) != "" {
				return false
			}
		}
		return true
	}
	return strings.TrimSpace(a.Text) == ""
}

// Draft accumulates answers keyed by field name. A key holding an empty
// answer means the question was visited and skipped, which the review screen
// distinguishes from "not asked yet".
type Draft map[string]Answer

type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// Message is one transcript entry. The transcript is presentational only;
// Draft is the source of truth for answers.
type Message struct {
	Role   Role      `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type Session struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	Phase      Phase     `json:"phase"`
	Draft      Draft     `json:"draft"`
	Transcript []Message `json:"transcript"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

var (
	ErrNotAsking    = errors.New("no question awaiting an answer")
	ErrNotReviewing = errors.New("session is not in review")
	ErrUnknownField = errors.New("unknown field")
	ErrNoSuchStep   = errors.New("no such step")
)

var welcomeScript = []string{
	"Salut, moi c'est Mia 👋 Je vais t'aider à créer ton profil candidat.",
	"Quelques questions rapides et on s'occupe du reste. C'est parti !",
}

const reviewIntro = "Et voilà, on a fait le tour 🎉 Vérifie tes réponses ci-dessous, tu peux encore les modifier avant de valider."

// NewSession opens a conversation at step 0 with the welcome script and the
// first prompt already on the transcript.
func NewSession(cat Catalog, userID uuid.UUID, email string, now time.Time) *Session {
	s := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Phase:     Asking(0),
		Draft:     Draft{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, line := range welcomeScript {
		s.appendBot(line, now)
	}
	if q, ok := cat.At(0); ok {
		s.appendPrompt(q, now)
	}
	return s
}

// CurrentQuestion resolves the question the session is waiting on.
func (s *Session) CurrentQuestion(cat Catalog) (Question, bool) {
	if s == nil {
		return Question{}, false
	}
	switch s.Phase.Kind {
	case PhaseAsking:
		return cat.At(s.Phase.Step)
	case PhaseEditing:
		return cat.ByField(s.Phase.Field)
	default:
		return Question{}, false
	}
}

// SubmitAnswer validates and records one answer, then advances the machine:
// editing returns to review, the last step enters review, anything else moves
// to the next askable step.
func (s *Session) SubmitAnswer(cat Catalog, ans Answer, now time.Time) error {
	q, ok := s.CurrentQuestion(cat)
	if !ok {
		return ErrNotAsking
	}

	if verr := Validate(q, ans); verr != nil {
		return verr
	}

	s.record(q, ans)
	s.appendUser(renderAnswer(ans), now)
	s.UpdatedAt = now

	if s.Phase.Kind == PhaseEditing {
		s.Phase = Reviewing()
		return nil
	}

	next, ok := s.nextAskableStep(cat, s.Phase.Step+1)
	if !ok {
		s.Phase = Reviewing()
		s.appendBot(reviewIntro, now)
		return nil
	}

	s.Phase = Asking(next)
	if nq, ok := cat.At(next); ok {
		s.appendPrompt(nq, now)
	}
	return nil
}

// BeginEdit jumps from review back to a single field.
func (s *Session) BeginEdit(cat Catalog, field string, now time.Time) error {
	if s.Phase.Kind != PhaseReviewing {
		return ErrNotReviewing
	}
	if _, ok := cat.ByField(field); !ok {
		return ErrUnknownField
	}
	s.Phase = Editing(field)
	s.UpdatedAt = now
	return nil
}

// Back leaves review for the last asked step, keeping the draft intact.
func (s *Session) Back(cat Catalog, now time.Time) error {
	if s.Phase.Kind != PhaseReviewing {
		return ErrNotReviewing
	}
	last, ok := s.lastAskableStep(cat)
	if !ok {
		return ErrNoSuchStep
	}
	s.Phase = Asking(last)
	s.UpdatedAt = now
	return nil
}

// AppendBotMessage is used by callers to surface notices (submission errors)
// on the transcript.
func (s *Session) AppendBotMessage(text string, now time.Time) {
	s.appendBot(text, now)
	s.UpdatedAt = now
}

// record stores the answer; an empty optional answer is kept as an explicit
// empty value so "visited but skipped" stays distinguishable.
func (s *Session) record(q Question, ans Answer) {
	stored := Answer{}
	if q.Kind == KindMultiSelect {
		stored.Choices = []string{}
		for _, c := range ans.Choices {
			c = strings.TrimSpace(c)
			if c != "" {
				stored.Choices = append(stored.Choices, c)
			}
		}
	} else {
		stored.Text = strings.TrimSpace(ans.Text)
	}
	s.Draft[q.Field] = stored
}

// DependencySatisfied reports whether q should be asked given the draft so
// far.
func DependencySatisfied(q Question, draft Draft) bool {
	dep := q.DependsOn
	if dep == nil {
		return true
	}
	ans, ok := draft[dep.Field]
	if !ok || ans.IsEmpty() {
		return false
	}
	if len(dep.AnyOf) == 0 {
		return true
	}
	for _, want := range dep.AnyOf {
		if ans.Text == want {
			return true
		}
	}
	return false
}

func (s *Session) nextAskableStep(cat Catalog, from int) (int, bool) {
	for i := from; i < cat.Len(); i++ {
		q, _ := cat.At(i)
		if DependencySatisfied(q, s.Draft) {
			return i, true
		}
	}
	return 0, false
}

func (s *Session) lastAskableStep(cat Catalog) (int, bool) {
	for i := cat.Len() - 1; i >= 0; i-- {
		q, _ := cat.At(i)
		if DependencySatisfied(q, s.Draft) {
			return i, true
		}
	}
	return 0, false
}

func (s *Session) appendPrompt(q Question, now time.Time) {
	s.appendBot(q.Prompt, now)
	if q.Tip != "" {
		s.appendBot("💡 "+q.Tip, now)
	}
}

func (s *Session) appendBot(text string, now time.Time) {
	s.Transcript = append(s.Transcript, Message{Role: RoleBot, Text: text, SentAt: now})
}

func (s *Session) appendUser(text string, now time.Time) {
	s.Transcript = append(s.Transcript, Message{Role: RoleUser, Text: text, SentAt: now})
}

func renderAnswer(ans Answer) string {
	if ans.IsEmpty() {
		return "(passé)"
	}
	if len(ans.Choices) > 0 {
		return strings.Join(ans.Choices, ", ")
	}
	return ans.Text
}
