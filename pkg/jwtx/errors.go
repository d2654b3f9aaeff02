package jwtx

import "errors"

var (
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: unexpected issuer")
	ErrInvalidToken = errors.New("jwtx: invalid token")
)
