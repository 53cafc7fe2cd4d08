package coerce_test

import (
	"fmt"
	"testing"

	"github.com/madison-web-solutions/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// label is an object with a canonical string representation.
type label struct {
	s string
}

func (l label) String() string {
	return l.s
}

// opaque is an object without one.
type opaque struct {
	N int
}

func ptr[T any](v T) *T {
	return &v
}

type coercion[T any] struct {
	name string
	in   any
	want T
	fail bool
}

func pass[T any](name string, in any, want T) coercion[T] {
	return coercion[T]{name: name, in: in, want: want}
}

func reject[T any](name string, in any) coercion[T] {
	return coercion[T]{name: name, in: in, fail: true}
}

// coercer is the method set shared by every coercer.
type coercer[T any] interface {
	Try(any) (T, bool)
	OrNull(any) (*T, bool)
	OrFail(any) (T, error)
	Must(any) T
}

// checkCoercions runs each case through Try, OrFail and Must and checks that
// they agree with each other and with the expectation.
func checkCoercions[T any](t *testing.T, c coercer[T], tests []coercion[T]) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Try(tt.in)
			gotOrFail, err := c.OrFail(tt.in)

			if tt.fail {
				var zero T
				require.False(t, ok, "should not coerce %#v, got %v", tt.in, got)
				require.Equal(t, zero, got)
				require.ErrorIs(t, err, coerce.ErrInvalidArgument)
				require.Equal(t, zero, gotOrFail)
				assert.Panics(t, func() { c.Must(tt.in) })
				return
			}

			require.True(t, ok, "could not coerce %#v", tt.in)
			require.Equal(t, tt.want, got)
			require.NoError(t, err)
			require.Equal(t, tt.want, gotOrFail)
			require.Equal(t, tt.want, c.Must(tt.in))
		})
	}
}

// checkOrNull checks OrNull against Try: the empty sentinel gives (nil, true)
// and every other input behaves exactly like Try.
func checkOrNull[T any](t *testing.T, c coercer[T], tests []coercion[T]) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.OrNull(tt.in)
			if coerce.IsEmpty(tt.in) {
				require.True(t, ok)
				require.Nil(t, got)
				return
			}
			want, wantOK := c.Try(tt.in)
			require.Equal(t, wantOK, ok)
			if !ok {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, want, *got)
		})
	}
}

func caseName(in any) string {
	return fmt.Sprintf("%T(%v)", in, in)
}
