package store

import (
	"encoding/json"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/rjvisser/worklog/internal/session"
)

const sequenceKeyLen = 8

// migrateSessionKeys rewrites databases from older versions that keyed
// sessions by their RFC3339 start time. Sequence keys took over so that
// sessions sharing a start time keep their insertion order across
// restarts.
func migrateSessionKeys(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	var (
		legacy   bool
		sessions []session.Session
	)

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		if len(k) != sequenceKeyLen {
			legacy = true
		}

		var s session.Session

		err := json.Unmarshal(v, &s)
		if err != nil {
			return err
		}

		sessions = append(sessions, s)
	}

	if !legacy {
		return nil
	}

	// Legacy keys sorted lexicographically by start time, so cursor
	// order is already chronological.
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	err := tx.DeleteBucket([]byte(sessionBucket))
	if err != nil {
		return err
	}

	bucket, err = tx.CreateBucket([]byte(sessionBucket))
	if err != nil {
		return err
	}

	for i := range sessions {
		value, err := json.Marshal(sessions[i])
		if err != nil {
			return err
		}

		err = bucket.Put(itob(uint64(i+1)), value)
		if err != nil {
			return err
		}
	}

	return nil
}
