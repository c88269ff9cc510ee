package auth

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory sqlite: every new connection is a fresh database, so pin
	// the pool to a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&RefreshToken{}))
	return db
}

func newTestService() *RefreshService {
	svc := NewRefreshService()
	svc.Sign = func(userID uint, isAdmin bool) (string, error) {
		return fmt.Sprintf("access-for-%d", userID), nil
	}
	return svc
}

type testPrincipal struct {
	id    uint
	admin bool
}

func (p testPrincipal) AuthenticatedID() uint { return p.id }
func (p testPrincipal) AdminRole() bool       { return p.admin }

func TestIssueThenRotate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	t1, err := svc.Issue(db, 7, false)
	require.NoError(t, err)
	require.Len(t, t1, 128)

	access, t2, err := svc.Rotate(db, t1)
	require.NoError(t, err)
	require.Equal(t, "access-for-7", access)
	require.Len(t, t2, 128)
	require.NotEqual(t, t1, t2)

	rec, err := svc.Store.Find(db, t2)
	require.NoError(t, err)
	require.Equal(t, uint(7), rec.UserID)
	require.WithinDuration(t, time.Now().Add(RefreshTTL), rec.ExpiresAt, time.Minute)
	require.WithinDuration(t, time.Now(), rec.CreatedAt, time.Minute)
}

func TestRotateIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	t1, err := svc.Issue(db, 1, false)
	require.NoError(t, err)

	_, _, err = svc.Rotate(db, t1)
	require.NoError(t, err)

	_, _, err = svc.Rotate(db, t1)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRotateMissingToken(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	_, _, err := svc.Rotate(db, "")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestRotateUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	_, _, err := svc.Rotate(db, "nope")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRotateExpiredTokenStillStored(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	expired := &RefreshToken{
		UserID:    3,
		Token:     "expired-token",
		CreatedAt: time.Now().Add(-RefreshTTL - time.Second),
		ExpiresAt: time.Now().Add(-time.Second),
	}
	require.NoError(t, svc.Store.Save(db, expired))

	// the record exists but rotation must reject it like a missing one
	_, _, err := svc.Rotate(db, "expired-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Store.Find(db, "expired-token")
	require.NoError(t, err)
}

func TestExpiryBoundaryIsInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	now := time.Now().Truncate(time.Second)
	svc.Now = func() time.Time { return now }

	rt := &RefreshToken{UserID: 4, Token: "boundary", CreatedAt: now.Add(-time.Hour), ExpiresAt: now}
	require.NoError(t, svc.Store.Save(db, rt))

	_, _, err := svc.Rotate(db, "boundary")
	require.ErrorIs(t, err, ErrInvalidToken)

	n, err := svc.PurgeExpired(db)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestRotateIndependentTokensSameOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	t1, err := svc.Issue(db, 9, false)
	require.NoError(t, err)
	t2, err := svc.Issue(db, 9, false)
	require.NoError(t, err)

	_, _, err = svc.Rotate(db, t1)
	require.NoError(t, err)

	// the other session must be unaffected
	_, _, err = svc.Rotate(db, t2)
	require.NoError(t, err)

	tokens, err := svc.Store.ListByUser(db, 9)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
}

func TestConcurrentRotationSingleWinner(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	t1, err := svc.Issue(db, 5, false)
	require.NoError(t, err)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Rotate(db, t1)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrInvalidToken)
		}
	}
	require.Equal(t, 1, wins, "exactly one rotation may succeed")

	tokens, err := svc.Store.ListByUser(db, 5)
	require.NoError(t, err)
	require.Len(t, tokens, 1, "one predecessor must yield one successor")
}

func TestRotateRollsBackWhenSignerFails(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()
	svc.Sign = func(userID uint, isAdmin bool) (string, error) {
		return "", errors.New("signer down")
	}

	t1, err := svc.Issue(db, 6, false)
	require.NoError(t, err)

	_, _, err = svc.Rotate(db, t1)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidToken)

	// the old token must have survived the rollback
	svc.Sign = func(userID uint, isAdmin bool) (string, error) { return "ok", nil }
	_, _, err = svc.Rotate(db, t1)
	require.NoError(t, err)
}

func TestPurgeExpiredCountsAndIdempotence(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	now := time.Now()
	for i := 0; i < 100; i++ {
		rt := &RefreshToken{
			UserID:    uint(i%10 + 1),
			Token:     fmt.Sprintf("old-%03d", i),
			CreatedAt: now.Add(-RefreshTTL - time.Hour),
			ExpiresAt: now.Add(-time.Hour),
		}
		require.NoError(t, svc.Store.Save(db, rt))
	}
	for i := 0; i < 50; i++ {
		rt := &RefreshToken{
			UserID:    uint(i%10 + 1),
			Token:     fmt.Sprintf("live-%03d", i),
			CreatedAt: now,
			ExpiresAt: now.Add(RefreshTTL),
		}
		require.NoError(t, svc.Store.Save(db, rt))
	}

	n, err := svc.PurgeExpired(db)
	require.NoError(t, err)
	require.EqualValues(t, 100, n)

	n, err = svc.PurgeExpired(db)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	var remaining int64
	require.NoError(t, db.Model(&RefreshToken{}).Count(&remaining).Error)
	require.EqualValues(t, 50, remaining)
}

func TestAttachOnLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	payload := map[string]any{"token": "jwt-here"}
	require.NoError(t, svc.AttachOnLogin(db, testPrincipal{id: 11}, payload))

	raw, ok := payload["refresh_token"].(string)
	require.True(t, ok)
	require.Len(t, raw, 128)
	require.Equal(t, "jwt-here", payload["token"], "existing fields stay untouched")

	rec, err := svc.Store.Find(db, raw)
	require.NoError(t, err)
	require.Equal(t, uint(11), rec.UserID)
}

func TestAttachOnLoginIgnoresUnknownPrincipal(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	payload := map[string]any{"token": "jwt-here"}
	require.NoError(t, svc.AttachOnLogin(db, "anonymous", payload))
	require.NotContains(t, payload, "refresh_token")

	require.NoError(t, svc.AttachOnLogin(db, testPrincipal{id: 0}, payload))
	require.NotContains(t, payload, "refresh_token")
}

func TestAttachOnLoginKeepsOtherSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	first, err := svc.Issue(db, 12, false)
	require.NoError(t, err)

	payload := map[string]any{}
	require.NoError(t, svc.AttachOnLogin(db, testPrincipal{id: 12}, payload))

	_, err = svc.Store.Find(db, first)
	require.NoError(t, err, "logging in again must not revoke other devices")
}
