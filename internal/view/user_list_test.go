package view_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-directory/internal/model"
	"user-directory/internal/state"
	"user-directory/internal/view"
)

func TestRenderUserList(t *testing.T) {
	tests := []struct {
		name  string
		state state.State
		want  string
	}{
		{
			name:  "Loading",
			state: state.State{IsLoading: true, Phase: state.PhaseLoading},
			want:  "Loading users...\n",
		},
		{
			name:  "Error",
			state: state.State{IsError: true, Phase: state.PhaseFailure},
			want:  "Error\n",
		},
		{
			name: "Populated",
			state: state.State{
				Phase: state.PhaseSuccess,
				Users: []model.User{
					{ID: "1", Name: "Alice", Avatar: "a.png"},
					{ID: "2", Name: "Bob", Avatar: "b.png"},
				},
			},
			want: "User List\nTotal Users: 2\n  #1  Alice  a.png\n  #2  Bob  b.png\n",
		},
		{
			name:  "Empty list",
			state: state.State{Phase: state.PhaseSuccess},
			want:  "User List\nTotal Users: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, view.RenderUserList(&buf, tt.state))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
