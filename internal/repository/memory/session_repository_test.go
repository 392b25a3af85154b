package memory

import (
	"testing"
	"time"

	"career-path-be/pkg/guidance/session"
)

func TestSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepository(30*time.Minute, time.Minute)

	sess := session.New()
	repo.Save(sess)

	got, found := repo.Get(sess.ID)
	if !found {
		t.Fatal("session not found after save")
	}
	if got.ID != sess.ID {
		t.Errorf("ID = %q, want %q", got.ID, sess.ID)
	}

	repo.Delete(sess.ID)
	if _, found := repo.Get(sess.ID); found {
		t.Error("session found after delete")
	}
}

func TestStaleSessionReadsAsAbsent(t *testing.T) {
	// Long sweep interval so only the staleness check can evict.
	repo := NewSessionRepository(30*time.Minute, time.Hour)

	sess := session.New()
	sess.LastActivity = time.Now().Add(-31 * time.Minute)
	repo.Save(sess)

	if _, found := repo.Get(sess.ID); found {
		t.Error("stale session should read as absent")
	}
	// And it stays gone.
	if _, found := repo.Get(sess.ID); found {
		t.Error("stale session resurfaced")
	}
}

func TestGetUnknownID(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)
	if _, found := repo.Get("nope"); found {
		t.Error("unknown id reported found")
	}
}
