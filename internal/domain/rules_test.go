package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateServiceDetails(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		details    Details
		wantReason string
	}{
		{
			name:    "complete counseling form",
			service: "counseling",
			details: Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "family"},
		},
		{
			name:       "nil details for known service",
			service:    "baptism",
			details:    nil,
			wantReason: "Missing service details form",
		},
		{
			name:       "missing first field wins",
			service:    "funeral",
			details:    Details{"familyContact": "79001234567"},
			wantReason: "Missing required field: deceasedName",
		},
		{
			name:       "blank value counts as missing",
			service:    "wedding",
			details:    Details{"groomName": "  ", "brideName": "Maria", "contactNumber": "79001234567"},
			wantReason: "Missing required field: groomName",
		},
		{
			name:       "phone must be digits only",
			service:    "counseling",
			details:    Details{"fullName": "Anna", "phone": "+7 900 123", "concern": "family"},
			wantReason: "phone must contain numbers only",
		},
		{
			name:    "service name is case-insensitive",
			service: "  Baptism ",
			details: Details{"childName": "Petr", "birthDate": "2025-01-01", "parentNames": "Ivan, Olga"},
		},
		{
			name:    "unknown service accepts any payload",
			service: "choir-practice",
			details: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceDetails(tt.service, tt.details)
			if tt.wantReason == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantReason, err.Reason)
		})
	}
}

func TestIsExclusiveService(t *testing.T) {
	assert.True(t, IsExclusiveService("funeral"))
	assert.True(t, IsExclusiveService("Wedding"))
	assert.False(t, IsExclusiveService("baptism"))
	assert.False(t, IsExclusiveService("counseling"))
	assert.False(t, IsExclusiveService(""))
}

func TestRequiredFieldsFor(t *testing.T) {
	assert.Equal(t, []string{"childName", "birthDate", "parentNames"}, RequiredFieldsFor("baptism"))
	assert.Empty(t, RequiredFieldsFor("unknown-service"))
}
