// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNotJWT is returned when a token cannot be parsed as a JWT.
	ErrNotJWT = errors.New("token is not a JWT")

	// ErrNoExpiry is returned when a JWT carries no exp claim.
	ErrNoExpiry = errors.New("token has no expiration")
)

// TokenExpiresAt reads the exp claim of tokenString without verifying the
// signature. The console never holds the signing key; the server remains
// the authority on validity.
//
// Returns ErrNotJWT if tokenString is not a JWT and ErrNoExpiry if it has no
// exp claim.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString is a JWT whose exp claim is not
// after now. Opaque tokens and JWTs without exp are never expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !exp.After(now)
}
