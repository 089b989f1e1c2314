package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/nutritrack/internal/client/client"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// ProfileTier is one source of the principal's profile. A tier that has
// nothing for sess answers common.ErrorNotFound so the next one is tried.
type ProfileTier interface {
	Lookup(ctx context.Context, sess *models.Session) (*models.User, error)
}

// CacheTier serves the profile snapshot stored with the session.
type CacheTier struct{}

func (CacheTier) Lookup(_ context.Context, sess *models.Session) (*models.User, error) {
	if sess.Profile == nil {
		return nil, common.ErrorNotFound
	}
	u := *sess.Profile
	return &u, nil
}

// RemoteTier fetches the profile from the server.
type RemoteTier struct {
	API client.Client
}

func (t RemoteTier) Lookup(ctx context.Context, sess *models.Session) (*models.User, error) {
	return t.API.Profile(ctx, sess.AccessToken)
}

// ProfileResolver walks its tiers in order; the first hit wins. It prefers
// a stale cached profile over a failed lookup.
type ProfileResolver struct {
	tiers  []ProfileTier
	logger logging.Logger
}

func NewProfileResolver(logger logging.Logger, tiers ...ProfileTier) *ProfileResolver {
	return &ProfileResolver{tiers: tiers, logger: logger}
}

// DefaultProfileResolver is the cache-then-server resolver.
func DefaultProfileResolver(api client.Client, logger logging.Logger) *ProfileResolver {
	return NewProfileResolver(logger, CacheTier{}, RemoteTier{API: api})
}

// Resolve returns the principal's profile with defaults applied. Errors are
// common.ErrNoSession, common.ErrorNotFound (no tier had it),
// common.ErrTokenExpired / common.ErrorUnauthorized, common.ErrNetwork or
// common.ErrUnexpected.
func (r *ProfileResolver) Resolve(ctx context.Context, sess *models.Session) (*models.User, error) {
	if !sess.Valid() {
		return nil, common.ErrNoSession
	}

	for _, tier := range r.tiers {
		u, err := tier.Lookup(ctx, sess)
		if err == nil && u != nil {
			resolved := u.WithDefaults()
			return &resolved, nil
		}
		if err == nil || errors.Is(err, common.ErrorNotFound) {
			continue
		}
		r.logger.Debug(ctx, "profile lookup failed", "principal_id", sess.PrincipalID, "error", err)
		return nil, translate(err)
	}
	return nil, common.ErrorNotFound
}

// translate reduces a collaborator error to the caller-facing taxonomy.
func translate(err error) error {
	for _, known := range []error{common.ErrNetwork, common.ErrTokenExpired, common.ErrorUnauthorized, common.ErrorNotFound} {
		if errors.Is(err, known) {
			return known
		}
	}
	return common.ErrUnexpected
}
