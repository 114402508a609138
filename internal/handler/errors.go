// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when the service set is
// missing or incomplete. The application fails at startup in that case.
var errNoServicesProvided = errors.New("no services provided for handlers")
