package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"applyflow/internal/completion"
	"applyflow/internal/domain/identity"
	"applyflow/internal/domain/onboarding"
	"applyflow/internal/infrastructure/profile"
	"applyflow/internal/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSession    = errors.New("no active onboarding session")
	ErrSubmitFailed = errors.New("profile submission failed")
	ErrInternal     = errors.New("internal error")
)

const submitFailedMessage = "Oups, l'enregistrement de ton profil a échoué 😕 Réessaie dans un instant."

// OnboardingUsecase drives the conversation: one session per user, answers
// validated and accumulated into the draft, final submission handed to the
// profile collaborator.
type OnboardingUsecase struct {
	cat      onboarding.Catalog
	store    onboarding.Store
	profiles profile.Client
	logger   *logger.Logger
	now      func() time.Time
}

// SubmitOutcome reports where the client should go after a successful
// submission.
type SubmitOutcome struct {
	Session  *onboarding.Session
	Redirect string
}

func NewOnboardingUsecase(cat onboarding.Catalog, store onboarding.Store, profiles profile.Client, log *logger.Logger) *OnboardingUsecase {
	return &OnboardingUsecase{
		cat:      cat,
		store:    store,
		profiles: profiles,
		logger:   log,
		now:      time.Now,
	}
}

func (u *OnboardingUsecase) Catalog() onboarding.Catalog {
	return u.cat
}

// Start resumes the user's session when one exists, otherwise opens a fresh
// one at step 0.
func (u *OnboardingUsecase) Start(ctx context.Context, ident identity.Identity) (*onboarding.Session, error) {
	sess, err := u.store.Get(ctx, ident.UserID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, onboarding.ErrSessionNotFound) {
		return nil, ErrInternal
	}

	sess = onboarding.NewSession(u.cat, ident.UserID, ident.Email, u.now().UTC())
	if err := u.store.Put(ctx, sess); err != nil {
		return nil, ErrInternal
	}
	u.logger.Info("onboarding session opened", "user_id", ident.UserID, "session_id", sess.ID)
	return sess, nil
}

func (u *OnboardingUsecase) Current(ctx context.Context, ident identity.Identity) (*onboarding.Session, error) {
	return u.get(ctx, ident)
}

// Answer submits one answer for the pending question. A validation failure
// comes back as *onboarding.ValidationError and leaves the session untouched.
func (u *OnboardingUsecase) Answer(ctx context.Context, ident identity.Identity, ans onboarding.Answer) (*onboarding.Session, error) {
	sess, err := u.get(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := sess.SubmitAnswer(u.cat, ans, u.now().UTC()); err != nil {
		var verr *onboarding.ValidationError
		if errors.As(err, &verr) {
			return sess, verr
		}
		return sess, ErrInvalidInput
	}

	if err := u.store.Put(ctx, sess); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

// Edit jumps from review into a single field.
func (u *OnboardingUsecase) Edit(ctx context.Context, ident identity.Identity, field string) (*onboarding.Session, error) {
	sess, err := u.get(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := sess.BeginEdit(u.cat, field, u.now().UTC()); err != nil {
		return sess, ErrInvalidInput
	}

	if err := u.store.Put(ctx, sess); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

// Back leaves review for the last question without clearing the draft.
func (u *OnboardingUsecase) Back(ctx context.Context, ident identity.Identity) (*onboarding.Session, error) {
	sess, err := u.get(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := sess.Back(u.cat, u.now().UTC()); err != nil {
		return sess, ErrInvalidInput
	}

	if err := u.store.Put(ctx, sess); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

// Submit sends the draft to the profile collaborator. On failure the session
// stays in review with an error message on the transcript and the caller may
// retry; on success the session is discarded.
func (u *OnboardingUsecase) Submit(ctx context.Context, ident identity.Identity) (SubmitOutcome, error) {
	sess, err := u.get(ctx, ident)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if sess.Phase.Kind != onboarding.PhaseReviewing {
		return SubmitOutcome{Session: sess}, ErrInvalidInput
	}

	payload := buildUpdatePayload(u.cat, sess.Draft)
	if err := u.profiles.Update(ctx, ident, payload); err != nil {
		u.logger.Warn("profile submission failed", "user_id", ident.UserID, "error", err)
		sess.AppendBotMessage(submitFailedMessage, u.now().UTC())
		if perr := u.store.Put(ctx, sess); perr != nil {
			return SubmitOutcome{Session: sess}, ErrInternal
		}
		return SubmitOutcome{Session: sess}, ErrSubmitFailed
	}

	if err := u.store.Delete(ctx, ident.UserID); err != nil {
		u.logger.Warn("session cleanup failed", "user_id", ident.UserID, "error", err)
	}

	u.logger.Info("profile submitted", "user_id", ident.UserID, "fields", len(payload))
	return SubmitOutcome{Session: sess, Redirect: RouteDashboard}, nil
}

// Abandon discards the draft entirely.
func (u *OnboardingUsecase) Abandon(ctx context.Context, ident identity.Identity) error {
	if err := u.store.Delete(ctx, ident.UserID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *OnboardingUsecase) get(ctx context.Context, ident identity.Identity) (*onboarding.Session, error) {
	sess, err := u.store.Get(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, onboarding.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, ErrInternal
	}
	return sess, nil
}

// buildUpdatePayload maps the draft into the collaborator's camelCase update
// body. Skipped and empty answers are omitted; numeric kinds are sent as
// numbers when they parse.
func buildUpdatePayload(cat onboarding.Catalog, draft onboarding.Draft) map[string]any {
	payload := make(map[string]any, len(draft))
	for field, ans := range draft {
		if ans.IsEmpty() {
			continue
		}
		q, ok := cat.ByField(field)
		if !ok {
			continue
		}

		key := completion.CamelName(field)
		switch q.Kind {
		case onboarding.KindMultiSelect:
			payload[key] = ans.Choices
		case onboarding.KindNumber:
			if f, err := strconv.ParseFloat(ans.Text, 64); err == nil {
				payload[key] = f
			} else {
				payload[key] = ans.Text
			}
		default:
			payload[key] = ans.Text
		}
	}
	return payload
}
