// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible message strings written into the
// "message" field of HTTP response bodies.
//
// Keeping them in one place keeps the wording stable; clients match on
// some of them verbatim.
package app

const (
	// MsgUserRegistered acknowledges a successful signup.
	MsgUserRegistered = "User registered successfully!"

	// MsgLoginSuccessful acknowledges a successful credential match.
	MsgLoginSuccessful = "Login successful!"

	// MsgAllFieldsRequired is returned when a required field is missing.
	MsgAllFieldsRequired = "All fields are required!"

	// MsgInvalidEmailOrPassword is returned for both an unknown email and a
	// wrong password, so that responses do not reveal which accounts exist.
	MsgInvalidEmailOrPassword = "Invalid email or password!"

	// MsgSignupFailed is returned for any store failure during signup,
	// a duplicate email included.
	MsgSignupFailed = "Signup failed!"

	// MsgServerError is returned when signup fails before reaching the store.
	MsgServerError = "Server error"

	// MsgInternalServerError is returned when the login lookup fails.
	MsgInternalServerError = "Internal server error"

	// MsgDatabaseError is returned when a bus listing or search query fails.
	MsgDatabaseError = "Database error"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"
)
