package loyalty

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	cardRandomDigits = 12
	issueMaxAttempts = 10
)

// CardIssuer generates loyalty card numbers: configured prefix followed
// by random digits and a Luhn check digit
type CardIssuer struct {
	prefix string
}

// NewCardIssuer builds issuer producing numbers with the given prefix
func NewCardIssuer(prefix string) *CardIssuer {
	return &CardIssuer{prefix: prefix}
}

// Issue generates a card number which is unique with regard to the
// provided existence check. Candidates colliding with already issued
// numbers are regenerated, after issueMaxAttempts error is raised.
func (i *CardIssuer) Issue(exists func(string) bool) (string, error) {
	for attempt := 0; attempt < issueMaxAttempts; attempt++ {
		number, err := i.generate()
		if err != nil {
			return "", err
		}

		if exists == nil || !exists(number) {
			return number, nil
		}
	}
	return "", fmt.Errorf("failed to issue unique card number after %d attempts", issueMaxAttempts)
}

func (i *CardIssuer) generate() (string, error) {
	digits := make([]int, cardRandomDigits)
	for n := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate card number - %w", err)
		}
		digits[n] = int(d.Int64())
	}

	body := ""
	for _, d := range digits {
		body += fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%s%s%d", i.prefix, body, luhnCheckDigit(digits)), nil
}

func luhnCheckDigit(digits []int) int {
	sum := 0
	for n := len(digits) - 1; n >= 0; n-- {
		d := digits[n]
		// every second digit from the right is doubled
		if (len(digits)-n)%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}
