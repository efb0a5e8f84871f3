package utils

import "crypto/rand"

const (
	recordIDLength  = 15
	recordIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NewRecordID returns a 15-char lowercase alphanumeric identifier, the
// id format used across all collections.
func NewRecordID() string {
	buf := make([]byte, recordIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate record id: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = recordIDCharset[int(b)%len(recordIDCharset)]
	}
	return string(buf)
}
