// Package store connects to the data store and manages saved sessions
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/rjvisser/worklog/internal/session"
)

const sessionBucket = "sessions"

var errWorklogRunning = errors.New(
	"is worklog already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client. The entire session log is loaded
// into memory, mutated there, and written back in full: worklog is a
// single-user, one-command-per-invocation tool.
type Client struct {
	*bolt.DB
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		return migrateSessionKeys(tx)
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// LoadSessions reads every saved session. Keys are insertion sequence
// numbers, so cursor order preserves the order in which sessions were
// originally logged.
func (c *Client) LoadSessions() ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess session.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// SaveSessions replaces the saved log in full.
func (c *Client) SaveSessions(sessions []session.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(sessionBucket))
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
	})
}

// itob converts a sequence number to a sortable 8-byte key.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)

	return b
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errWorklogRunning
		}

		return nil, err
	}

	return db, nil
}
