// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteFingerprint(t *testing.T) {
	sum := sha256.Sum256([]byte("pune-mumbai-09:05"))
	want := hex.EncodeToString(sum[:])

	tests := []struct {
		name        string
		source      string
		destination string
		time        string
	}{
		{"canonical", "pune", "mumbai", "09:05"},
		{"case and spaces", "  Pune ", "MUMBAI", " 09:05 "},
		{"unpadded time", "Pune", "Mumbai", "9:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, want, RouteFingerprint(tt.source, tt.destination, tt.time))
		})
	}
}

func TestRouteFingerprint_Distinguishes(t *testing.T) {
	base := RouteFingerprint("Pune", "Mumbai", "09:05")

	assert.NotEqual(t, base, RouteFingerprint("Pune", "Mumbai", "09:06"))
	assert.NotEqual(t, base, RouteFingerprint("Mumbai", "Pune", "09:05"))
	assert.Len(t, base, 64)
}

func TestPadTime(t *testing.T) {
	assert.Equal(t, "09:05", padTime("9:05"))
	assert.Equal(t, "09:05", padTime("09:05"))
	assert.Equal(t, "00000", padTime(""))
	assert.Equal(t, "09:05:00", padTime("09:05:00"))
}
