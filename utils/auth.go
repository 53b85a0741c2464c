package utils

import (
	"errors"

	"rangely/config"

	"golang.org/x/crypto/bcrypt"
)

// VerifyAdminKey compares a presented admin key against the configured bcrypt
// hash. An empty configured hash disables admin access entirely.
func VerifyAdminKey(key string) error {
	hash := config.AppConfig.AdminKeyHash
	if hash == "" {
		return errors.New("admin access is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return errors.New("invalid admin key")
	}
	return nil
}

// HashAdminKey produces a bcrypt hash suitable for ADMIN_KEY_HASH.
func HashAdminKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
