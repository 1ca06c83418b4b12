package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Package replay provides a record/replay test double: a Recorder captures
// real HTTP responses into a cassette file, and a Replayer serves them back
// without touching the network.

const responseBucket = "responses"

// Cassette is a bbolt-backed store of recorded response bodies, keyed by
// request method and URI. Safe for concurrent use.
type Cassette struct {
	db *bolt.DB
}

// Open opens (or creates) a cassette file at path, creating parent
// directories as needed.
func Open(path string) (*Cassette, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cassette directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cassette db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(responseBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cassette bucket: %w", err)
	}

	return &Cassette{db: db}, nil
}

// Close closes the underlying cassette file.
func (c *Cassette) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// lookup returns the recorded body for key, if any.
func (c *Cassette) lookup(key string) ([]byte, bool, error) {
	var body []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(responseBucket))
		if bucket == nil {
			return fmt.Errorf("response bucket missing")
		}
		if value := bucket.Get([]byte(key)); value != nil {
			body = make([]byte, len(value))
			copy(body, value)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return body, body != nil, nil
}

// store records body under key, replacing any previous recording.
func (c *Cassette) store(key string, body []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(responseBucket))
		if bucket == nil {
			return fmt.Errorf("response bucket missing")
		}
		return bucket.Put([]byte(key), body)
	})
}
