package service

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	apperrors "campmed/internal/errors"
)

// normalizeContact formats a contact number as E.164, reading numbers without a
// country code in region. Empty input stays empty.
func normalizeContact(input, region string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidContact, err)
	}
	if !phonenumbers.IsValidNumber(number) {
		return "", apperrors.ErrInvalidContact
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
