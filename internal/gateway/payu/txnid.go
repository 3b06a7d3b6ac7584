package payu

import (
	"math/rand"
	"strconv"
	"time"
)

const txnIDPrefix = "TXN"

// NewTxnID builds a checkout transaction id from the current unix millis and
// a 9-character base36 suffix. Uniqueness is probabilistic; the gateway only
// requires ids to be unique per merchant over a rolling window.
func NewTxnID() string {
	suffix := make([]byte, 9)
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return txnIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}
