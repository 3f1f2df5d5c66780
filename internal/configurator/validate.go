package configurator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	clientIDPattern = regexp.MustCompile(`(?i)^[a-z0-9]{8}-[a-z0-9]{4}-[a-z0-9]{4}-[a-z0-9]{4}-[a-z0-9]{12}$`)
	currencyPattern = regexp.MustCompile(`^[a-zA-Z]{3}$`)
)

var (
	errInvalidClientID       = errors.New("Please enter valid Flex Client ID. You can check it from Flex Console!")
	errInvalidPublishableKey = errors.New("Please enter Stripe publishable key with prefix pk_!")
	errInvalidCurrency       = errors.New("Please enter currency in ISO 4217 format (e.g. USD, EUR, CAD...)")
)

// ValidateClientID accepts a Flex client id: five groups of 8-4-4-4-12
// letters or digits separated by dashes, in any case.
func ValidateClientID(v string) error {
	if !clientIDPattern.MatchString(v) {
		return errInvalidClientID
	}
	return nil
}

// ValidatePublishableKey accepts any Stripe publishable key, live or test.
func ValidatePublishableKey(v string) error {
	if !strings.HasPrefix(v, "pk_") {
		return errInvalidPublishableKey
	}
	return nil
}

// ValidateCurrency accepts a three letter ISO 4217 code.
func ValidateCurrency(v string) error {
	if !currencyPattern.MatchString(v) {
		return errInvalidCurrency
	}
	return nil
}
