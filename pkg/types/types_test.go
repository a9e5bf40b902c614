package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile(t *testing.T) {
	ana := "Ana"
	mail := "a@x.com"
	empty := ""

	tests := []struct {
		name string
		in   [2]*string
		want UserProfile
	}{
		{"no arguments apply both defaults", [2]*string{nil, nil}, UserProfile{ID: 0, Name: "Invitado", Email: ""}},
		{"name only keeps default email", [2]*string{&ana, nil}, UserProfile{ID: 0, Name: "Ana", Email: ""}},
		{"both supplied", [2]*string{&ana, &mail}, UserProfile{ID: 0, Name: "Ana", Email: "a@x.com"}},
		{"explicit empty name is kept", [2]*string{&empty, &mail}, UserProfile{ID: 0, Name: "", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUserProfile(tt.in[0], tt.in[1]))
		})
	}
}

func TestStorageFault(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, NewStorageFault("op", nil))
	})

	t.Run("wraps cause and keeps message", func(t *testing.T) {
		err := NewStorageFault("list favorite routes", ErrDetached)
		var fault *StorageFault
		require.True(t, errors.As(err, &fault))
		assert.Equal(t, "list favorite routes", fault.Op)
		assert.True(t, errors.Is(err, ErrDetached))
		assert.Equal(t, "list favorite routes: store is detached", err.Error())
	})

	t.Run("does not double wrap", func(t *testing.T) {
		inner := NewStorageFault("inner", errors.New("disk full"))
		outer := NewStorageFault("outer", inner)
		assert.Same(t, inner, outer)
	})
}
