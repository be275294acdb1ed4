package middleware

import "errors"

var (
	errInvalidTokenFormat = errors.New("JWT token must have 3 parts separated by dots")
	errInvalidSignature   = errors.New("token signature is invalid")
	errTokenExpired       = errors.New("token has expired")
	errInvalidToken       = errors.New("invalid token")
	errMissingSubject     = errors.New("missing user id in token")
)
