package middleware

import "room-booking/internal/pkg/errs"

var errMissingToken = errs.New("access token missing")
