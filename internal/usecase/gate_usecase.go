package usecase

import (
	"context"
	"errors"

	"applyflow/internal/completion"
	"applyflow/internal/domain/identity"
	"applyflow/internal/domain/onboarding"
	"applyflow/internal/infrastructure/profile"
	"applyflow/internal/pkg/logger"
)

// Client-side destinations the gate routes to.
const (
	RouteDashboard  = "/dashboard"
	RouteOnboarding = "/onboarding"
	RouteLogin      = "/login"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type CheckOptions struct {
	// AutoRedirect makes the gate issue a redirect destination when the
	// profile is incomplete or the fetch fails; otherwise it only reports.
	AutoRedirect bool
}

type GateResult struct {
	HasProfile    bool
	MissingFields []string
	Redirect      string
	Err           error
}

// GateUsecase decides whether a candidate may proceed past onboarding. It
// re-derives completeness on every call; nothing is cached because the record
// can change between checks.
type GateUsecase struct {
	cat      onboarding.Catalog
	profiles profile.Client
	logger   *logger.Logger
}

func NewGateUsecase(cat onboarding.Catalog, profiles profile.Client, log *logger.Logger) *GateUsecase {
	return &GateUsecase{cat: cat, profiles: profiles, logger: log}
}

// Check fetches the profile and evaluates completeness, preferring the
// collaborator's own verdict when it sent one. All fetch and parse failures
// fail closed toward onboarding; a missing token routes to login with a
// return-path hint.
func (u *GateUsecase) Check(ctx context.Context, ident identity.Identity, opts CheckOptions) GateResult {
	if ident.Token == "" {
		return GateResult{
			HasProfile: false,
			Redirect:   RouteLogin + "?next=" + RouteOnboarding,
			Err:        ErrNotAuthenticated,
		}
	}

	res, err := u.profiles.Fetch(ctx, ident)
	if err != nil {
		if errors.Is(err, profile.ErrUnauthorized) {
			return GateResult{
				HasProfile: false,
				Redirect:   RouteLogin + "?next=" + RouteOnboarding,
				Err:        err,
			}
		}
		u.logger.Debug("profile fetch failed, gating to onboarding", "user_id", ident.UserID, "error", err)
		out := GateResult{HasProfile: false, Err: err}
		if opts.AutoRedirect {
			out.Redirect = RouteOnboarding
		}
		return out
	}

	var status completion.Status
	if res.ProfileCompleted != nil {
		status = completion.Status{Complete: *res.ProfileCompleted, MissingFields: res.MissingFields}
	} else {
		status = completion.Evaluate(res.Candidate, u.cat)
	}

	out := GateResult{HasProfile: status.Complete, MissingFields: status.MissingFields}
	if opts.AutoRedirect && !status.Complete {
		out.Redirect = RouteOnboarding
	}
	return out
}
