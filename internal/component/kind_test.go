package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", Functional, false},
		{"functional", Functional, false},
		{"arrow", Arrow, false},
		{"class", Class, false},
		{"memoized", Memoized, false},
		{"forwardRef", ForwardRef, false},
		{"forwardref", ForwardRef, false},
		{"CLASS", Class, false},
		{"hooks", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid kinds")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindsHaveVariants(t *testing.T) {
	assert.Len(t, Kinds(), 5)
	for _, k := range Kinds() {
		_, ok := variants[k]
		assert.True(t, ok, "kind %s has no variant", k)
	}
	assert.Equal(t, []string{"functional", "arrow", "class", "memoized", "forwardRef"}, KindNames())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", JavaScript, false},
		{"js", JavaScript, false},
		{"JSX", JavaScript, false},
		{"typescript", TypeScript, false},
		{"ts", TypeScript, false},
		{"coffee", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageExtensions(t *testing.T) {
	assert.Equal(t, "js", JavaScript.SourceExt())
	assert.Equal(t, "jsx", JavaScript.ComponentExt())
	assert.Equal(t, "ts", TypeScript.SourceExt())
	assert.Equal(t, "tsx", TypeScript.ComponentExt())
}
