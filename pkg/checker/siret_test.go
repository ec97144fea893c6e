package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIRET(t *testing.T) {
	c, err := SIRET(Options{})
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    any
		sanitize bool
		want     any
		wantKind Kind
	}{
		{
			name:  "compact form accepted",
			value: "53268510400012",
		},
		{
			name:  "spaced form accepted",
			value: "532 685 104 00012",
		},
		{
			name:     "compact form sanitized",
			value:    "53268510400012",
			sanitize: true,
			want:     "532 685 104 00012",
		},
		{
			name:     "sanitize is idempotent",
			value:    "532 685 104 00012",
			sanitize: true,
			want:     "532 685 104 00012",
		},
		{
			name:     "bad checksum rejected",
			value:    "53268510400013",
			wantKind: KindInvalid,
		},
		{
			name:     "bad checksum rejected before sanitize",
			value:    "53268510400013",
			sanitize: true,
			wantKind: KindInvalid,
		},
		{
			name:     "too few digits rejected by shape check",
			value:    "5326851040001",
			wantKind: KindInvalid,
		},
		{
			name:     "letters rejected by shape check",
			value:    "5326851040001a",
			wantKind: KindInvalid,
		},
		{
			name:     "non-string rejected",
			value:    53268510400012,
			wantKind: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c(tt.value, &Context{Path: "siret", Sanitize: tt.sanitize})
			if tt.wantKind != "" {
				cerr := requireKind(t, err, tt.wantKind)
				assert.Equal(t, "siret", cerr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, luhnValid("53268510400012"))
	assert.False(t, luhnValid("53268510400013"))
	assert.True(t, luhnValid("0"))
}
