package services

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Fixed local cache keys.
const (
	WardrobeItemsKey = "wardrobeItems"
	LooksKey         = "looks"
	UserIDKey        = "userId"
	UserProfileKey   = "userProfile"
)

const localCacheBucket = "lookup"

var ErrMalformedLocalCache = errors.New("local cache holds malformed data")

// LocalCache is the durable on-device string store. Set overwrites.
type LocalCache interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

type BoltLocalCache struct {
	db *bbolt.DB
}

func NewBoltLocalCache(path string) (*BoltLocalCache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open local cache %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(localCacheBucket))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &BoltLocalCache{db: db}, nil
}

func (b *BoltLocalCache) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(localCacheBucket)).Get([]byte(key))
		if data != nil {
			// bbolt memory is only valid inside the transaction
			value = string(data)
			found = true
		}

		return nil
	})

	return value, found, err
}

func (b *BoltLocalCache) Set(key string, value string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(localCacheBucket)).Put([]byte(key), []byte(value))
	})
}

func (b *BoltLocalCache) Close() error {
	return b.db.Close()
}
