package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtend_Construction(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		ext      Extension
		wantKind Kind
	}{
		{
			name: "string base",
			ext:  Extension{Type: "string", Check: func(any, *Context) any { return nil }},
		},
		{
			name: "number base",
			ext:  Extension{Type: "number", Check: func(any, *Context) any { return nil }},
		},
		{
			name:     "missing check hook",
			ext:      Extension{Type: "string"},
			wantKind: KindAssertion,
		},
		{
			name:     "unknown base type",
			ext:      Extension{Type: "datetime", Check: func(any, *Context) any { return nil }},
			wantKind: KindAssertion,
		},
		{
			name:     "derived kinds are not base types",
			ext:      Extension{Type: "email", Check: func(any, *Context) any { return nil }},
			wantKind: KindAssertion,
		},
		{
			name:     "base options are still validated",
			opts:     Options{Value: 42},
			ext:      Extension{Type: "string", Check: func(any, *Context) any { return nil }},
			wantKind: KindAssertion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Extend(tt.opts, tt.ext)
			if tt.wantKind != "" {
				assert.Nil(t, c)
				requireKind(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestExtend_BaseFailurePropagates(t *testing.T) {
	hookRan := false
	c, err := Extend(Options{MinLength: intPtr(5)}, Extension{
		Type: "string",
		Check: func(any, *Context) any {
			hookRan = true
			return nil
		},
	})
	require.NoError(t, err)

	_, err = c("abc", &Context{Path: "code"})
	cerr := requireKind(t, err, KindInvalid)
	assert.Equal(t, "code", cerr.Path)
	assert.False(t, hookRan, "hook must not run when the base checker rejects")
}

func TestExtend_FalseRejects(t *testing.T) {
	c, err := Extend(Options{}, Extension{
		Type:  "string",
		Check: func(any, *Context) any { return false },
	})
	require.NoError(t, err)

	_, err = c("anything", &Context{Path: "code"})
	cerr := requireKind(t, err, KindInvalid)
	assert.Equal(t, "code", cerr.Path)
	assert.EqualError(t, err, "code is invalid")
}

func TestExtend_NilPassesThrough(t *testing.T) {
	c, err := Extend(Options{}, Extension{
		Type:  "string",
		Check: func(any, *Context) any { return nil },
	})
	require.NoError(t, err)

	got, err := c("anything", &Context{Path: "code"})
	require.NoError(t, err)
	assert.Nil(t, got, "nil hook result means nothing to write back")
}

func TestExtend_ReplacementBecomesResult(t *testing.T) {
	c, err := Extend(Options{}, Extension{
		Type: "string",
		Check: func(value any, ctx *Context) any {
			return strings.ToUpper(value.(string))
		},
	})
	require.NoError(t, err)

	got, err := c("abc", &Context{Path: "code"})
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func TestExtend_TrueIsNotARejection(t *testing.T) {
	c, err := Extend(Options{}, Extension{
		Type:  "string",
		Check: func(any, *Context) any { return true },
	})
	require.NoError(t, err)

	got, err := c("anything", &Context{Path: "code"})
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestExtend_HookSkippedForAbsentValue(t *testing.T) {
	c, err := Extend(Options{}, Extension{
		Type:  "string",
		Check: func(any, *Context) any { return false },
	})
	require.NoError(t, err)

	got, err := c(nil, &Context{Path: "code"})
	require.NoError(t, err)
	assert.Nil(t, got)
}
