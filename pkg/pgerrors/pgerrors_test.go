package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name              string
		err               error
		wantSerialization bool
	}{
		{
			name:              "serialization failure 40001",
			err:               &pq.Error{Code: "40001"},
			wantSerialization: true,
		},
		{
			name:              "deadlock detected 40P01",
			err:               &pq.Error{Code: "40P01"},
			wantSerialization: true,
		},
		{
			name:              "wrapped serialization failure",
			err:               fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}),
			wantSerialization: true,
		},
		{
			name: "unique violation is not a serialization failure",
			err:  &pq.Error{Code: "23505"},
		},
		{
			name: "plain error passes through",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			if tt.wantSerialization {
				require.ErrorIs(t, got, ErrSerializationFailure)
			} else {
				assert.NotErrorIs(t, got, ErrSerializationFailure)
				assert.Equal(t, tt.err, got)
			}
			// Исходная ошибка остаётся в цепочке
			assert.ErrorContains(t, got, tt.err.Error())
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}
