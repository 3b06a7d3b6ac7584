package payu

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
)

// PayU recomputes the request hash server-side from the literal field values
// it receives, so the string signed here must match byte for byte. The
// canonical layout is:
//
//	key|txnid|amount|productinfo|firstname|email|udf1|udf2|...|udf10|salt
//
// udf2..udf10 are never used by this system but still occupy a slot each,
// giving 17 components and exactly 16 pipe separators.
const hashPipeCount = 16

type HashFields struct {
	Key         string
	TxnID       string
	Amount      string // fixed two-decimal string, e.g. "2.00"
	ProductInfo string
	Firstname   string
	Email       string
	UDF1        string
}

// HashString builds the canonical pipe-delimited signing input.
func HashString(f HashFields, salt string) string {
	parts := []string{
		f.Key, f.TxnID, f.Amount, f.ProductInfo, f.Firstname, f.Email,
		f.UDF1,
		"", "", "", "", "", "", "", "", "", // udf2..udf10
	}
	parts = append(parts, salt)

	s := strings.Join(parts, "|")
	if n := strings.Count(s, "|"); n != hashPipeCount {
		// Wrong pipe count means a field carried an embedded separator or the
		// layout above was edited. Signing such a string would produce a hash
		// the gateway silently rejects, so fail loudly instead.
		panic(fmt.Sprintf("payu: hash string has %d pipes, want %d", n, hashPipeCount))
	}
	return s
}

// Sign returns the lowercase hex SHA-512 digest of the canonical hash string.
// Pure and deterministic; identical inputs always produce identical output.
func Sign(f HashFields, salt string) string {
	sum := sha512.Sum512([]byte(HashString(f, salt)))
	return hex.EncodeToString(sum[:])
}

// FormatAmount renders a minor-unit amount as the fixed two-decimal string
// the gateway expects ("200" minor units -> "2.00"). Sending "2" instead of
// "2.00" makes the gateway's recomputed hash differ and the transaction fail.
func FormatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
