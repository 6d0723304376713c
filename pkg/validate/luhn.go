package validate

import (
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
)

const BankAccountLength = 10

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsBankAccount checks the shape of an account number: ten digits, Luhn valid.
func IsBankAccount(s string) bool {
	if len(s) != BankAccountLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return IsLuhn(s)
}

// NewBankAccount returns a Luhn-valid account number not rejected by taken.
func NewBankAccount(taken func(string) bool) (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		number := goluhn.Generate(BankAccountLength)
		if number[0] == '0' || !IsBankAccount(number) {
			continue
		}
		if taken == nil || !taken(number) {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not allocate bank account number")
}
