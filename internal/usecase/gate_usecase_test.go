package usecase

import (
	"context"
	"errors"
	"testing"

	"applyflow/internal/domain/onboarding"
	"applyflow/internal/infrastructure/profile"
	"applyflow/internal/pkg/logger"
)

func newTestGate(client profile.Client) *GateUsecase {
	return NewGateUsecase(onboarding.DefaultCatalog(), client, logger.NewNop())
}

func TestGateMissingTokenRoutesToLogin(t *testing.T) {
	u := newTestGate(&mockProfileClient{})
	ident := testIdentity()
	ident.Token = ""

	res := u.Check(context.Background(), ident, CheckOptions{})
	if res.HasProfile {
		t.Errorf("no token should mean no profile access")
	}
	if !errors.Is(res.Err, ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", res.Err)
	}
	want := RouteLogin + "?next=" + RouteOnboarding
	if res.Redirect != want {
		t.Errorf("redirect = %q, want %q", res.Redirect, want)
	}
}

func TestGateRejectedTokenRoutesToLogin(t *testing.T) {
	u := newTestGate(&mockProfileClient{fetchErr: profile.ErrUnauthorized})

	res := u.Check(context.Background(), testIdentity(), CheckOptions{})
	if res.HasProfile {
		t.Errorf("rejected token should mean no profile access")
	}
	if res.Redirect != RouteLogin+"?next="+RouteOnboarding {
		t.Errorf("redirect = %q", res.Redirect)
	}
}

func TestGateFetchFailureFailsClosed(t *testing.T) {
	boom := errors.New("timeout")
	u := newTestGate(&mockProfileClient{fetchErr: boom})

	res := u.Check(context.Background(), testIdentity(), CheckOptions{AutoRedirect: true})
	if res.HasProfile {
		t.Errorf("fetch failure must fail closed")
	}
	if !errors.Is(res.Err, boom) {
		t.Errorf("err = %v, want the fetch error", res.Err)
	}
	if res.Redirect != RouteOnboarding {
		t.Errorf("redirect = %q, want %q", res.Redirect, RouteOnboarding)
	}

	// Without AutoRedirect the gate only reports.
	res = u.Check(context.Background(), testIdentity(), CheckOptions{})
	if res.Redirect != "" {
		t.Errorf("redirect = %q, want none when not auto-redirecting", res.Redirect)
	}
}

func TestGateTrustsServerVerdict(t *testing.T) {
	completed := true
	u := newTestGate(&mockProfileClient{fetchRes: profile.FetchResult{
		// Empty candidate would evaluate as incomplete locally.
		Candidate:        nil,
		ProfileCompleted: &completed,
	}})

	res := u.Check(context.Background(), testIdentity(), CheckOptions{AutoRedirect: true})
	if !res.HasProfile {
		t.Errorf("server verdict should win over local evaluation")
	}
	if res.Redirect != "" {
		t.Errorf("complete profile should not redirect, got %q", res.Redirect)
	}

	notCompleted := false
	u = newTestGate(&mockProfileClient{fetchRes: profile.FetchResult{
		ProfileCompleted: &notCompleted,
		MissingFields:    []string{"phone"},
	}})
	res = u.Check(context.Background(), testIdentity(), CheckOptions{AutoRedirect: true})
	if res.HasProfile {
		t.Errorf("server says incomplete")
	}
	if len(res.MissingFields) != 1 || res.MissingFields[0] != "phone" {
		t.Errorf("missing = %v, want the server's list", res.MissingFields)
	}
	if res.Redirect != RouteOnboarding {
		t.Errorf("redirect = %q, want %q", res.Redirect, RouteOnboarding)
	}
}

func TestGateEvaluatesLocallyWithoutServerVerdict(t *testing.T) {
	u := newTestGate(&mockProfileClient{fetchRes: profile.FetchResult{
		Candidate: map[string]any{"firstName": "Paul"},
	}})

	res := u.Check(context.Background(), testIdentity(), CheckOptions{AutoRedirect: true})
	if res.HasProfile {
		t.Errorf("mostly empty record should be incomplete")
	}
	if len(res.MissingFields) == 0 {
		t.Errorf("missing fields should be reported")
	}
	for _, f := range res.MissingFields {
		if f == "first_name" {
			t.Errorf("firstName was present, first_name should not be missing")
		}
	}
	if res.Redirect != RouteOnboarding {
		t.Errorf("redirect = %q", res.Redirect)
	}
}
