package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"
)

// tokenBytes gives 128 hex characters per token, plenty against guessing.
const tokenBytes = 64

// Principal is any identity that can own refresh tokens. The issuance hook
// ignores values that don't implement it (anonymous callers, service
// identities), so login flows can call it unconditionally.
type Principal interface {
	AuthenticatedID() uint
	AdminRole() bool
}

// Signer mints an access token for a user. Kept injectable for tests; the
// default is GenerateAccessToken.
type Signer func(userID uint, isAdmin bool) (string, error)

// RefreshService owns the refresh-token lifecycle: issue on login, rotate on
// refresh, purge on expiry.
type RefreshService struct {
	Store RefreshStore
	Sign  Signer
	Now   func() time.Time
}

func NewRefreshService() *RefreshService {
	return &RefreshService{
		Store: NewRefreshStore(),
		Sign:  GenerateAccessToken,
		Now:   time.Now,
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *RefreshService) newRecord(userID uint, isAdmin bool) (*RefreshToken, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	return &RefreshToken{
		UserID:    userID,
		Token:     token,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(RefreshTTL),
	}, nil
}

// Issue creates and persists a fresh token for the user. Existing tokens are
// left alone so other devices keep their sessions.
func (s *RefreshService) Issue(db *gorm.DB, userID uint, isAdmin bool) (string, error) {
	rt, err := s.newRecord(userID, isAdmin)
	if err != nil {
		return "", err
	}
	if err := s.Store.Save(db, rt); err != nil {
		return "", err
	}
	return rt.Token, nil
}

// AttachOnLogin is the post-login hook: for a recognized principal it issues
// a refresh token and adds it to the response payload under "refresh_token".
// Anything else is a silent no-op and the payload stays untouched.
func (s *RefreshService) AttachOnLogin(db *gorm.DB, principal any, payload map[string]any) error {
	p, ok := principal.(Principal)
	if !ok || p.AuthenticatedID() == 0 {
		return nil
	}
	token, err := s.Issue(db, p.AuthenticatedID(), p.AdminRole())
	if err != nil {
		return err
	}
	payload["refresh_token"] = token
	return nil
}

// Rotate exchanges a valid token for a new access/refresh pair, consuming
// the presented token. The whole exchange runs in one transaction: when two
// callers race on the same token the delete's rows-affected count picks a
// single winner, and any failure after the delete rolls back so the old
// token survives.
func (s *RefreshService) Rotate(db *gorm.DB, token string) (access string, refresh string, err error) {
	if token == "" {
		return "", "", ErrMissingToken
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		cur, err := s.Store.Find(tx, token)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		if err != nil {
			return err
		}
		if cur.Expired(s.Now()) {
			return ErrInvalidToken
		}

		n, err := s.Store.Delete(tx, token)
		if err != nil {
			return err
		}
		if n == 0 {
			// a concurrent rotation or the sweeper got here first
			return ErrInvalidToken
		}

		next, err := s.newRecord(cur.UserID, cur.IsAdmin)
		if err != nil {
			return err
		}
		if err := s.Store.Save(tx, next); err != nil {
			return err
		}

		tok, err := s.Sign(cur.UserID, cur.IsAdmin)
		if err != nil {
			return err
		}

		access, refresh = tok, next.Token
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// PurgeExpired deletes every token at or past its expiry and returns how
// many were removed. Safe to run at any time, including alongside rotations.
func (s *RefreshService) PurgeExpired(db *gorm.DB) (int64, error) {
	return s.Store.DeleteExpiredBefore(db, s.Now())
}
