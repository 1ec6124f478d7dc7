// Package daily picks a deterministic target word for a calendar day, so
// self-play runs on the same day agree on the hidden word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index maps a date onto [0, n) using HMAC-SHA256(salt, DateKey(date)).
// It returns 0 when n <= 0.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Target returns the word of the day from list.
func Target(date time.Time, salt string, list []solver.Word) (solver.Word, bool) {
	if len(list) == 0 {
		return "", false
	}
	return list[Index(date, salt, len(list))], true
}
