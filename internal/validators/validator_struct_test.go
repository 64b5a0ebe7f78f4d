// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/course-plus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Validate(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
		msg     string
	}{
		{name: "valid user", obj: models.User{Email: "a@b.com", Role: models.RoleStudent}},
		{name: "user without role", obj: &models.User{Email: "a@b.com"}},
		{name: "bad email", obj: models.User{Email: "nope"}, wantErr: ErrInvalidInput, msg: "email: email"},
		{name: "unknown role", obj: models.User{Email: "a@b.com", Role: "root"}, wantErr: ErrInvalidInput, msg: "role: oneof=student teacher admin"},
		{name: "negative price", obj: models.Course{Title: "Go", Email: "t@b.com", Price: -1}, wantErr: ErrInvalidInput, msg: "price: gte=0"},
		{name: "status update", obj: models.StatusUpdate{Status: models.StatusApproved}},
		{name: "status update empty", obj: models.StatusUpdate{}, wantErr: ErrInvalidInput, msg: "status: required"},
		{name: "zero price intent", obj: models.PaymentIntentRequest{}, wantErr: ErrInvalidInput, msg: "price: gt=0"},
		{name: "partial ignores other fields", obj: models.Course{Email: "t@b.com"}, fields: []string{"Email"}},
		{name: "partial unknown field", obj: models.Course{}, fields: []string{"Nope"}, wantErr: ErrUnknownField},
		{name: "not a struct", obj: 42, wantErr: ErrUnsupportedType},
		{name: "nil pointer", obj: (*models.User)(nil), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
