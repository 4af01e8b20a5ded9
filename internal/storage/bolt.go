package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"lobitos-storefront/internal/domain"
)

var bucketName = []byte("storefront")

// Bolt is a single-file KV store. The file lock makes this process the one
// logical writer for the whole dataset.
type Bolt struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and ensures the bucket exists.
func Open(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (s *Bolt) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return domain.ErrNotFound
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Bolt) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (s *Bolt) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// Ping verifies the database file is still readable.
func (s *Bolt) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return fmt.Errorf("bucket %s missing", bucketName)
		}
		return nil
	})
}

func (s *Bolt) Close() error {
	return s.db.Close()
}
