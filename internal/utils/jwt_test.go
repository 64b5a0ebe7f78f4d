// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/course-plus/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
	testEmail  = "a@b.com"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()

	token, err := GenerateJWTToken(testIssuer, testEmail, now, 9*time.Hour, testKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, testEmail, token.Email)

	claims, ok := token.Token.Claims.(*models.Claims)
	require.True(t, ok, "could not cast claims to *models.Claims")
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, testEmail, claims.Subject)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, now.Add(9*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testEmail, time.Hour, testKey},
		{"empty email", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testEmail, 0, testKey},
		{"empty key", testIssuer, testEmail, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, time.Now(), tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WithinValidityWindow(t *testing.T) {
	issuedAt := time.Now()
	genToken, err := GenerateJWTToken(testIssuer, testEmail, issuedAt, 9*time.Hour, testKey)
	require.NoError(t, err)

	for _, at := range []time.Time{
		issuedAt,
		issuedAt.Add(time.Hour),
		issuedAt.Add(9*time.Hour - time.Minute),
	} {
		parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer, at)
		require.NoError(t, err)
		assert.Equal(t, testEmail, parsed.Email)
	}
}

func TestValidateAndParseJWTToken_AfterExpiry(t *testing.T) {
	issuedAt := time.Now()
	genToken, err := GenerateJWTToken(testIssuer, testEmail, issuedAt, 9*time.Hour, testKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer, issuedAt.Add(9*time.Hour+time.Second))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testEmail, time.Now(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", testIssuer, time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testEmail, time.Now(), time.Hour, testKey)

	parts := strings.Split(genToken.SignedString, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err := ValidateAndParseJWTToken(tampered, testKey, testIssuer, time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testEmail, time.Now(), time.Hour, testKey)
	other, _ := GenerateJWTToken(testIssuer, "admin@b.com", time.Now(), time.Hour, "attacker-key")

	parts := strings.Split(genToken.SignedString, ".")
	otherParts := strings.Split(other.SignedString, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err := ValidateAndParseJWTToken(forged, testKey, testIssuer, time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testEmail, time.Now(), time.Hour, testKey)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, "fake-issuer", time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &models.Claims{
		Email: testEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(unsigned, testKey, testIssuer, time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer, time.Now())
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
