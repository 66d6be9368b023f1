package onboarding

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"paul@example.com", true},
		{"paul@@x", false},
		{"paul@x", false},
		{"@example.com", false},
		{"paul@example.", false},
		{"pa ul@example.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+237 670000000", true},
		{"0670000000", true},
		{"  +237 670000000  ", true},
		{"abc", false},
		{"+123", false},
		{"670000000", false},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"3.5", true},
		{"-2", true},
		{"five", false},
		{"", false},
		{"NaN", false},
		{"Inf", false},
	}
	for _, c := range cases {
		if got := Number(c.in); got != c.want {
			t.Errorf("Number(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRequired(t *testing.T) {
	if Required("   ") {
		t.Errorf("Required of blanks should be false")
	}
	if !Required(" x ") {
		t.Errorf("Required of non-empty should be true")
	}
}

func TestValidateOptionalEmptyPasses(t *testing.T) {
	q := Question{Field: "linkedin_url", Kind: KindText, Required: false}
	if verr := Validate(q, Answer{}); verr != nil {
		t.Fatalf("empty optional answer should pass, got %v", verr)
	}
}

func TestValidateRequiredEmptyFails(t *testing.T) {
	q := Question{Field: "first_name", Kind: KindText, Required: true}
	verr := Validate(q, Answer{Text: "   "})
	if verr == nil {
		t.Fatalf("empty required answer should fail")
	}
	if verr.Field != "first_name" {
		t.Errorf("validation error field = %q, want first_name", verr.Field)
	}
}

func TestValidateKindSpecificMessages(t *testing.T) {
	cases := []struct {
		q    Question
		ans  Answer
		want string
	}{
		{Question{Field: "email", Kind: KindEmail, Required: true}, Answer{Text: "nope"}, messageEmail},
		{Question{Field: "phone", Kind: KindPhone, Required: true}, Answer{Text: "nope"}, messagePhone},
		{Question{Field: "years_experience", Kind: KindNumber, Required: true}, Answer{Text: "five"}, messageNumber},
		{Question{Field: "job_type", Kind: KindSelect, Options: []string{"CDI"}, Required: true}, Answer{Text: "CDD"}, messageSelect},
	}
	for _, c := range cases {
		verr := Validate(c.q, c.ans)
		if verr == nil {
			t.Fatalf("Validate(%s) should fail", c.q.Field)
		}
		if verr.Message != c.want {
			t.Errorf("Validate(%s) message = %q, want %q", c.q.Field, verr.Message, c.want)
		}
	}
}

func TestValidateMultiSelectRejectsUnknownOption(t *testing.T) {
	q := Question{Field: "skills", Kind: KindMultiSelect, Options: []string{"React", "Node.js"}, Required: true}
	if verr := Validate(q, Answer{Choices: []string{"React", "COBOL"}}); verr == nil {
		t.Fatalf("unknown choice should fail validation")
	}
	if verr := Validate(q, Answer{Choices: []string{"React"}}); verr != nil {
		t.Fatalf("valid choice should pass, got %v", verr)
	}
}
