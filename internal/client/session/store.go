// Package session persists the client's authenticated session in the local
// metadata table. Store is the only reader and writer of those keys; the
// rest of the client receives a *models.Session by parameter.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

var sessionKeys = []string{
	common.SessionKeyAccessToken,
	common.SessionKeyRefreshToken,
	common.SessionKeyUserData,
	common.SessionKeyPrincipalID,
	common.SessionKeyIssuedAt,
}

// Store keeps one session at a time. Reads are safe to run concurrently;
// writes are expected to be serialized by the caller.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Save replaces any stored session with sess. All keys are written in one
// transaction, so Current never observes half a session.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	if !sess.Valid() {
		return common.NewValidationError("session needs both an access and a refresh token")
	}

	principalID := sess.PrincipalID
	if principalID == "" && sess.Profile != nil {
		principalID = sess.Profile.ID
	}
	issuedAt := sess.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.now()
	}

	values := map[string][]byte{
		common.SessionKeyAccessToken:  []byte(sess.AccessToken),
		common.SessionKeyRefreshToken: []byte(sess.RefreshToken),
		common.SessionKeyPrincipalID:  []byte(principalID),
		common.SessionKeyIssuedAt:     []byte(issuedAt.UTC().Format(time.RFC3339)),
	}
	if sess.Profile != nil {
		data, err := json.Marshal(sess.Profile)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		values[common.SessionKeyUserData] = data
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, sessionKeys...); err != nil {
			return err
		}
		for _, k := range sessionKeys {
			v, ok := values[k]
			if !ok {
				continue
			}
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Current returns the stored session, or (nil, nil) when there is none.
// An unreadable profile snapshot is dropped rather than failing the read;
// the profile resolver then falls through to the server.
func (s *Store) Current(ctx context.Context) (*models.Session, error) {
	values, err := metadata.NewSQLiteRepository(s.db).GetMany(ctx, sessionKeys...)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	token := values[common.SessionKeyAccessToken]
	if len(token) == 0 {
		return nil, nil
	}

	sess := &models.Session{
		AccessToken:  string(token),
		RefreshToken: string(values[common.SessionKeyRefreshToken]),
		PrincipalID:  string(values[common.SessionKeyPrincipalID]),
	}
	if ts, err := time.Parse(time.RFC3339, string(values[common.SessionKeyIssuedAt])); err == nil {
		sess.IssuedAt = ts
	}
	if data := values[common.SessionKeyUserData]; len(data) > 0 {
		var u models.User
		if err := json.Unmarshal(data, &u); err == nil {
			sess.Profile = &u
			if sess.PrincipalID == "" {
				sess.PrincipalID = u.ID
			}
		}
	}
	return sess, nil
}

// Clear removes every session key. Other metadata is left alone.
func (s *Store) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, sessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether an access token is stored. Storage
// errors count as "not authenticated".
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.SessionKeyAccessToken)
	return err == nil && len(token) > 0
}
