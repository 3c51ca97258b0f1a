package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownerRequest struct {
	OwnerName  string `json:"owner_name" validate:"required"`
	OwnerPhone string `json:"owner_phone" validate:"required,ph_mobile"`
	AltPhone   string `json:"alt_phone" validate:"omitempty,ph_mobile"`
	Species    string `json:"species" validate:"omitempty,oneof=dog cat bird rabbit other"`
}

func TestValidate_PhoneTag(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		req       ownerRequest
		wantField string
	}{
		{"valid local", ownerRequest{OwnerName: "Ana", OwnerPhone: "09123456789"}, ""},
		{"valid formatted", ownerRequest{OwnerName: "Ana", OwnerPhone: "+63 912-345-6789"}, ""},
		{"optional empty", ownerRequest{OwnerName: "Ana", OwnerPhone: "9123456789", AltPhone: ""}, ""},
		{"optional zero", ownerRequest{OwnerName: "Ana", OwnerPhone: "9123456789", AltPhone: "0"}, ""},
		{"required zero left to required", ownerRequest{OwnerName: "Ana", OwnerPhone: "0"}, ""},
		{"vertical tab", ownerRequest{OwnerName: "Ana", OwnerPhone: "09123456789\v"}, ""},
		{"optional separators only", ownerRequest{OwnerName: "Ana", OwnerPhone: "9123456789", AltPhone: "---"}, "alt_phone"},
		{"required invalid", ownerRequest{OwnerName: "Ana", OwnerPhone: "091234567"}, "owner_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			errs := v.FormatValidationErrors(err)
			require.Contains(t, errs, tt.wantField)
			assert.Equal(t,
				"The "+tt.wantField+" must be a valid Philippine mobile number (e.g., 09123456789, +639123456789).",
				errs[tt.wantField],
			)
		})
	}
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&ownerRequest{Species: "lizard"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "owner_name is required", errs["owner_name"])
	assert.Equal(t, "owner_phone is required", errs["owner_phone"])
	assert.Equal(t, "species must be one of: dog cat bird rabbit other", errs["species"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}

type staffRequest struct {
	Role          string `json:"role" validate:"required,oneof=doctor receptionist"`
	LicenseNumber string `json:"license_number" validate:"required_if=Role doctor"`
	OldPassword   string `json:"old_password" validate:"required_with=Password"`
	Password      string `json:"password" validate:"omitempty,min=8"`
	Token         string `json:"token" validate:"omitempty,uuid"`
}

func TestFormatValidationErrors_ConditionalTags(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&staffRequest{Role: "doctor", Password: "newsecret", Token: "abc"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "license_number is required", errs["license_number"])
	assert.Equal(t, "old_password is required", errs["old_password"])
	assert.Equal(t, "token must be a valid UUID", errs["token"])

	assert.NoError(t, v.Validate(&staffRequest{Role: "receptionist"}))
}
