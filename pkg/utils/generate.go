package utils

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

var bookingSeq atomic.Uint64

// ==================== BOOKING REFERENCE ====================

// GenerateBookingID creates a booking reference in the form BK<token>. The
// token is the current millisecond timestamp plus a monotonic 4-digit
// suffix, so submissions landing in the same millisecond still get distinct
// references. Strict global uniqueness is not guaranteed; the reference only
// has to correlate one checkout attempt with its confirmation page and
// notification.
func GenerateBookingID() string {
	seq := bookingSeq.Add(1) % 10000
	return fmt.Sprintf("BK%d%04d", time.Now().UnixMilli(), seq)
}

// BookingToken returns the bare token of a booking reference, without the BK
// prefix. Used to derive demo provider references from the same attempt.
func BookingToken(bookingID string) string {
	return strings.TrimPrefix(bookingID, "BK")
}
