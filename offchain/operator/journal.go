package operator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketActions = []byte("actions")

// ErrRecordNotFound is returned when an action has no journal entry
var ErrRecordNotFound = errors.New("operator: journal record not found")

// Record states
const (
	RecordSubmitted = "submitted"
	RecordFailed    = "failed"
)

// Record is the journal entry of one action
type Record struct {
	Action    Action    `json:"action"`
	State     string    `json:"state"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Journal persists submitted and failed actions across restarts
type Journal struct {
	db  *bbolt.DB
	now func() time.Time
}

// OpenJournal opens or creates the bbolt journal at path. The parent
// directory is created if it does not exist.
func OpenJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("operator: create journal directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("operator: open journal: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketActions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("operator: create journal bucket: %w", err)
	}
	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the underlying database
func (j *Journal) Close() error { return j.db.Close() }

// Get returns the record of a
func (j *Journal) Get(a Action) (Record, error) {
	var rec Record
	err := j.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketActions).Get([]byte(a.ID()))
		if data == nil {
			return ErrRecordNotFound
		}
		return json.Unmarshal(data, &rec)
	})
	return rec, err
}

// ShouldSubmit reports whether a has neither been submitted nor exhausted
// maxAttempts failures
func (j *Journal) ShouldSubmit(a Action, maxAttempts int) (bool, error) {
	rec, err := j.Get(a)
	if errors.Is(err, ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("operator: read journal: %w", err)
	}
	if rec.State == RecordSubmitted {
		return false, nil
	}
	return rec.Attempts < maxAttempts, nil
}

// MarkSubmitted records that a was accepted by the chain
func (j *Journal) MarkSubmitted(a Action) error {
	return j.update(a, func(rec *Record) {
		rec.State = RecordSubmitted
		rec.Attempts++
		rec.LastError = ""
	})
}

// MarkFailed records a failed submission of a
func (j *Journal) MarkFailed(a Action, cause error) error {
	return j.update(a, func(rec *Record) {
		rec.State = RecordFailed
		rec.Attempts++
		if cause != nil {
			rec.LastError = cause.Error()
		}
	})
}

func (j *Journal) update(a Action, mutate func(rec *Record)) error {
	return j.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketActions)
		key := []byte(a.ID())

		rec := Record{Action: a}
		if data := b.Get(key); data != nil {
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("operator: decode journal record: %w", err)
			}
		}
		mutate(&rec)
		rec.UpdatedAt = j.now()

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("operator: encode journal record: %w", err)
		}
		return b.Put(key, data)
	})
}

// Records returns every journal entry
func (j *Journal) Records() ([]Record, error) {
	var out []Record
	err := j.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketActions).ForEach(func(_, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	return out, err
}
