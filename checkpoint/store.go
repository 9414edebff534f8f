package checkpoint

import (
	"errors"
	"os"
	"path"
	"time"

	"github.com/fernandosanchezjr/seedrand/engine"
	"github.com/fernandosanchezjr/seedrand/utils"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

var (
	BucketNotFound = errors.New("bucket not found")
	ErrNotFound    = errors.New("checkpoint not found")
)

var enginesBucket = []byte("engines")

// Store keeps named engine snapshots so a deterministic stream can resume
// exactly where it stopped, across process restarts.
type Store struct {
	db *bbolt.DB
}

func Open(filePath string) (*Store, error) {
	expanded, err := utils.ExpandPath(filePath)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(path.Dir(expanded), 0700); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(expanded, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := getEnginesBucket(tx)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func getEnginesBucket(tx *bbolt.Tx) (bucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		bucket, err = tx.CreateBucketIfNotExists(enginesBucket)
	} else {
		bucket = tx.Bucket(enginesBucket)
		if bucket == nil {
			err = BucketNotFound
		}
	}
	return
}

// Save snapshots e under name, replacing any earlier snapshot.
func (s *Store) Save(name string, e *engine.Engine) error {
	data, err := e.MarshalBinary()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getEnginesBucket(tx)
		if err != nil {
			return err
		}
		if err = bucket.Put([]byte(name), data); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"name":  name,
			"width": e.Width(),
		}).Debug("Engine checkpoint saved")
		return nil
	})
}

// Load restores the engine saved under name.
func (s *Store) Load(name string) (*engine.Engine, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getEnginesBucket(tx)
		if err != nil {
			return err
		}
		value := bucket.Get([]byte(name))
		if value == nil {
			return ErrNotFound
		}
		data = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return engine.FromSnapshot(data)
}

func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getEnginesBucket(tx)
		if err != nil {
			return err
		}
		if bucket.Get([]byte(name)) == nil {
			return ErrNotFound
		}
		return bucket.Delete([]byte(name))
	})
}

// Names lists saved checkpoints in key order.
func (s *Store) Names() (names []string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getEnginesBucket(tx)
		if err != nil {
			return err
		}
		return bucket.ForEach(func(name, _ []byte) error {
			names = append(names, string(name))
			return nil
		})
	})
	return
}

func (s *Store) Close() error {
	return s.db.Close()
}
