package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

func TestGetUserProfile_Absent(t *testing.T) {
	b := newTestBackend(t)

	p, found, err := b.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, types.UserProfile{}, p)
}

func TestSaveUserProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		saves []types.UserProfile
		want  types.UserProfile
	}{
		{
			name:  "single save",
			saves: []types.UserProfile{{Name: "Ana", Email: "a@x.com"}},
			want:  types.UserProfile{ID: 0, Name: "Ana", Email: "a@x.com"},
		},
		{
			name: "second save replaces the whole row",
			saves: []types.UserProfile{
				types.NewUserProfile(ptr("Ana"), ptr("a@x.com")),
				types.NewUserProfile(ptr("Beto"), nil),
			},
			want: types.UserProfile{ID: 0, Name: "Beto", Email: ""},
		},
		{
			name:  "caller id is ignored",
			saves: []types.UserProfile{{ID: 42, Name: "Carla", Email: "c@x.com"}},
			want:  types.UserProfile{ID: 0, Name: "Carla", Email: "c@x.com"},
		},
		{
			name:  "defaults are stored as given",
			saves: []types.UserProfile{types.NewUserProfile(nil, nil)},
			want:  types.UserProfile{ID: 0, Name: "Invitado", Email: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t)
			for _, p := range tt.saves {
				require.NoError(t, b.SaveUserProfile(ctx, p))
			}

			got, found, err := b.GetUserProfile(ctx)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, tt.want, got)

			var rows int
			require.NoError(t, b.db.QueryRow("SELECT COUNT(*) FROM user_profile").Scan(&rows))
			assert.Equal(t, 1, rows, "at most one profile row may exist")
		})
	}
}

func ptr(s string) *string { return &s }
