package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"

	"github.com/rjvisser/worklog/internal/session"
)

func testClient(t *testing.T) *Client {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "worklog.db")

	client, err := NewClient(dbPath)
	if err != nil {
		t.Fatalf("unexpected error opening the database: %v", err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("unable to close the database: %v", err)
		}
	})

	return client
}

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 14, hour, min, 0, 0, time.Local)
}

func TestSaveAndLoadSessions(t *testing.T) {
	client := testClient(t)

	sessions := []session.Session{
		{
			StartTime:   at(9, 0),
			EndTime:     at(10, 30),
			Description: "task A",
		},
		{
			StartTime:   at(11, 0),
			Description: "task B", // still open
		},
	}

	if err := client.SaveSessions(sessions); err != nil {
		t.Fatalf("unexpected error saving sessions: %v", err)
	}

	got, err := client.LoadSessions()
	if err != nil {
		t.Fatalf("unexpected error loading sessions: %v", err)
	}

	if diff := cmp.Diff(sessions, got); diff != "" {
		t.Errorf("sessions did not round-trip (-want +got):\n%s", diff)
	}

	if !got[1].Open() {
		t.Error("expected the open session to stay open after a round-trip")
	}
}

func TestSaveReplacesPreviousLog(t *testing.T) {
	client := testClient(t)

	err := client.SaveSessions([]session.Session{
		{StartTime: at(9, 0), EndTime: at(10, 0), Description: "task A"},
		{StartTime: at(11, 0), EndTime: at(12, 0), Description: "task B"},
	})
	if err != nil {
		t.Fatalf("unexpected error saving sessions: %v", err)
	}

	replacement := []session.Session{
		{StartTime: at(13, 0), EndTime: at(14, 0), Description: "task C"},
	}

	if err := client.SaveSessions(replacement); err != nil {
		t.Fatalf("unexpected error saving sessions: %v", err)
	}

	got, err := client.LoadSessions()
	if err != nil {
		t.Fatalf("unexpected error loading sessions: %v", err)
	}

	if diff := cmp.Diff(replacement, got); diff != "" {
		t.Errorf("expected the saved log to be replaced (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	client := testClient(t)

	got, err := client.LoadSessions()
	if err != nil {
		t.Fatalf("unexpected error loading sessions: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("expected no sessions, but got: %d", len(got))
	}
}

func TestLegacyKeyMigration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "worklog.db")

	legacy := []session.Session{
		{StartTime: at(9, 0), EndTime: at(10, 0), Description: "task A"},
		{StartTime: at(11, 0), EndTime: at(12, 0), Description: "task B"},
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		t.Fatalf("unexpected error creating the legacy database: %v", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := range legacy {
			value, err := json.Marshal(legacy[i])
			if err != nil {
				return err
			}

			key := []byte(legacy[i].StartTime.Format(time.RFC3339Nano))

			if err := bucket.Put(key, value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error writing legacy records: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("unexpected error closing the legacy database: %v", err)
	}

	client, err := NewClient(dbPath)
	if err != nil {
		t.Fatalf("unexpected error reopening the database: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	got, err := client.LoadSessions()
	if err != nil {
		t.Fatalf("unexpected error loading sessions: %v", err)
	}

	if diff := cmp.Diff(legacy, got); diff != "" {
		t.Errorf("legacy records were not preserved (-want +got):\n%s", diff)
	}

	err = client.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			if len(k) != sequenceKeyLen {
				t.Errorf("expected an 8-byte sequence key, but got: %q", k)
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error inspecting keys: %v", err)
	}
}
