package service

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// newReferenceNumber generates a display-only correlation token of the form
// ARN-<unix-millis>-<n> where n is in [0,1000). It is not persisted and is
// not guaranteed globally unique; the random component only disambiguates
// submissions landing in the same millisecond.
func newReferenceNumber() string {
	return fmt.Sprintf("ARN-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}
