package loyalty

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardNumberFormat = regexp.MustCompile(`^LOY\d{13}$`)

func TestIssueFormat(t *testing.T) {
	issuer := NewCardIssuer("LOY")

	number, err := issuer.Issue(nil)
	require.NoError(t, err)
	assert.Regexp(t, cardNumberFormat, number)
}

func TestIssueLuhnCheckDigit(t *testing.T) {
	issuer := NewCardIssuer("LOY")

	number, err := issuer.Issue(nil)
	require.NoError(t, err)

	digits := number[len("LOY"):]
	sum := 0
	for n := len(digits) - 1; n >= 0; n-- {
		d := int(digits[n] - '0')
		if (len(digits)-n)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	assert.Zero(t, sum%10, "card number %s must pass Luhn validation", number)
}

func TestIssueRetriesOnCollision(t *testing.T) {
	issuer := NewCardIssuer("LOY")

	attempts := 0
	number, err := issuer.Issue(func(string) bool {
		attempts++
		return attempts < 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Regexp(t, cardNumberFormat, number)
}

func TestIssueGivesUpWhenEverythingCollides(t *testing.T) {
	issuer := NewCardIssuer("LOY")

	_, err := issuer.Issue(func(string) bool { return true })
	assert.Error(t, err)
}

func TestIssueUniqueness(t *testing.T) {
	issuer := NewCardIssuer("LOY")

	issued := make(map[string]struct{})
	exists := func(number string) bool {
		_, ok := issued[number]
		return ok
	}

	for i := 0; i < 100; i++ {
		number, err := issuer.Issue(exists)
		require.NoError(t, err)

		_, ok := issued[number]
		require.False(t, ok, "issued card number %s twice", number)
		issued[number] = struct{}{}
	}
}
