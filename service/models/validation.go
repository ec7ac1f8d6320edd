package models

import (
	"errors"
	"strings"
)

const (
	// MaxLocationNameLength is the maximum length of a location name.
	MaxLocationNameLength = 250

	// MaxLocationCodeLength is the maximum length of a location code.
	MaxLocationCodeLength = 50

	// MaxCustomerNameLength is the maximum length of a customer name.
	MaxCustomerNameLength = 250
)

// ValidateLocationName checks that a location name meets requirements.
func ValidateLocationName(name string) error {
	if len(name) < 1 {
		return errors.New("location name must not be empty")
	}
	if len(name) > MaxLocationNameLength {
		return errors.New("location name must be at most 250 characters")
	}
	return nil
}

// ValidateLocationCode checks an optional location code.
func ValidateLocationCode(code string) error {
	if len(code) > MaxLocationCodeLength {
		return errors.New("location code must be at most 50 characters")
	}
	return nil
}

// ValidateCustomerName checks that a customer name meets requirements.
func ValidateCustomerName(name string) error {
	if len(name) < 1 {
		return errors.New("customer name must not be empty")
	}
	if len(name) > MaxCustomerNameLength {
		return errors.New("customer name must be at most 250 characters")
	}
	return nil
}

// ValidateEmail performs a minimal structural check on an optional email.
// Deliverability is not this service's concern.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("invalid email address")
	}
	return nil
}
