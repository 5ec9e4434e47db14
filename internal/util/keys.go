package util

import "encoding/hex"

// RecordKey returns the storage key of a record: rec:<ns>:<hex digest>.
func RecordKey(ns string, digest []byte) string {
	return "rec:" + ns + ":" + hex.EncodeToString(digest)
}
