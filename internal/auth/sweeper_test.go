package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweeperRunPurges(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService()

	rt := &RefreshToken{
		UserID:    1,
		Token:     "stale",
		CreatedAt: time.Now().Add(-RefreshTTL),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, svc.Store.Save(db, rt))

	s := NewSweeper(db, svc)
	s.Run()

	var count int64
	require.NoError(t, db.Model(&RefreshToken{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSweeperStartStop(t *testing.T) {
	db := newTestDB(t)
	s := NewSweeper(db, newTestService())

	require.NoError(t, s.Start())
	s.Stop()
}
