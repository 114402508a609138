// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is returned by the request decoders when the body
// cannot be parsed as JSON or as a form.
var ErrInvalidRequestBody = errors.New("invalid request body")
