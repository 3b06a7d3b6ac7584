package payu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureFields = HashFields{
	Key:         "M5DU7Y",
	TxnID:       "TXN1",
	Amount:      "2.00",
	ProductInfo: "7-Day Trial Setup Fee",
	Firstname:   "testuser",
	Email:       "test@example.com",
	UDF1:        "plan_trial_2inr",
}

const fixtureSalt = "LrXuo7cBIiXad4zx5wIOubxCpx4tRGIj"

func TestHashStringPipeCount(t *testing.T) {
	s := HashString(fixtureFields, fixtureSalt)

	assert.Equal(t, 16, strings.Count(s, "|"))
	assert.True(t, strings.HasPrefix(s, "M5DU7Y|TXN1|2.00|"))
	assert.True(t, strings.HasSuffix(s, "|"+fixtureSalt))
	// udf2..udf10 contribute empty slots, not omitted fields
	assert.Contains(t, s, "plan_trial_2inr||||||||||"+fixtureSalt)
}

func TestHashStringEmptyUDF1KeepsPipeCount(t *testing.T) {
	f := fixtureFields
	f.UDF1 = ""

	assert.Equal(t, 16, strings.Count(HashString(f, fixtureSalt), "|"))
}

func TestSignKnownVector(t *testing.T) {
	// Regression fixture: any change to the canonical layout breaks this.
	const want = "4c0edaf62c95677475f39d222753e58d15e3607caeb3db3d30b25dac57eb045f" +
		"3dfd5cae513f2d2df5862a48d4cc8b36d99899eae5af8a84bce97d01c378e213"

	got := Sign(fixtureFields, fixtureSalt)

	require.Len(t, got, 128)
	assert.Equal(t, want, got)
	assert.Equal(t, strings.ToLower(got), got)
}

func TestSignDeterministic(t *testing.T) {
	assert.Equal(t, Sign(fixtureFields, fixtureSalt), Sign(fixtureFields, fixtureSalt))
}

func TestSignChangesWithAmountFormatting(t *testing.T) {
	bare := fixtureFields
	bare.Amount = "2"

	// "2" vs "2.00" must not collide; the gateway signs the literal string.
	assert.NotEqual(t, Sign(fixtureFields, fixtureSalt), Sign(bare, fixtureSalt))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2.00", FormatAmount(200))
	assert.Equal(t, "2999.00", FormatAmount(299900))
	assert.Equal(t, "29990.00", FormatAmount(2999000))
	assert.Equal(t, "0.05", FormatAmount(5))
}
