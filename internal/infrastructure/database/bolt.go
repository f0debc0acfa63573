package database

import (
	"time"

	"github.com/boltdb/bolt"
)

// OpenBolt opens (or creates) the embedded database file. Bolt holds an
// exclusive file lock, so a second process waits at most one second.
func OpenBolt(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
}
