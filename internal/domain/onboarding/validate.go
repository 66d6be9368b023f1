package onboarding

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+|0)[0-9 ]{8,}$`)
)

// Required reports whether v is non-empty once trimmed.
func Required(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Email accepts a single-@ address with a non-empty local part and a
// dot-bearing domain.
func Email(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Count(v, "@") != 1 {
		return false
	}
	return emailRe.MatchString(v)
}

// Phone accepts "+" or "0" followed by at least 8 digits or spaces.
func Phone(v string) bool {
	return phoneRe.MatchString(strings.TrimSpace(v))
}

// Number accepts anything that parses to a finite number.
func Number(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidationError carries the kind-specific message shown to the candidate.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Message
}

// Validate checks an answer against the question's kind. An optional question
// answered with nothing passes trivially.
func Validate(q Question, ans Answer) *ValidationError {
	empty := ans.IsEmpty()
	if empty {
		if !q.Required {
			return nil
		}
		return invalid(q, messageRequired)
	}

	switch q.Kind {
	case KindEmail:
		if !Email(ans.Text) {
			return invalid(q, messageEmail)
		}
	case KindPhone:
		if !Phone(ans.Text) {
			return invalid(q, messagePhone)
		}
	case KindNumber:
		if !Number(ans.Text) {
			return invalid(q, messageNumber)
		}
	case KindSelect:
		if len(q.Options) > 0 && !containsOption(q.Options, ans.Text) {
			return invalid(q, messageSelect)
		}
	case KindMultiSelect:
		for _, choice := range ans.Choices {
			if len(q.Options) > 0 && !containsOption(q.Options, choice) {
				return invalid(q, messageMultiSelect)
			}
		}
	case KindText, KindLongText:
		// Required() already handled above.
	}
	return nil
}

const (
	messageRequired    = "Cette information est nécessaire pour continuer 🙏"
	messageEmail       = "Hmm, cet email ne semble pas valide. Tu peux vérifier ? 📧"
	messagePhone       = "Ce numéro ne semble pas valide. Essaie au format +237 670000000 📱"
	messageNumber      = "Il me faut un nombre ici 🔢"
	messageSelect      = "Choisis une des options proposées 👆"
	messageMultiSelect = "Choisis au moins une des options proposées 👆"
)

func invalid(q Question, msg string) *ValidationError {
	return &ValidationError{Field: q.Field, Kind: q.Kind, Message: msg}
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
