package game

import (
	"testing"

	"careerparty/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNextActiveIndex(t *testing.T) {
	players := func(retired ...bool) []*models.Player {
		ps := make([]*models.Player, len(retired))
		for i, r := range retired {
			ps[i] = &models.Player{Retired: r}
		}
		return ps
	}

	tests := []struct {
		name    string
		players []*models.Player
		current int
		want    int
	}{
		{
			name:    "advances to next player",
			players: players(false, false, false),
			current: 0,
			want:    1,
		},
		{
			name:    "wraps around",
			players: players(false, false, false),
			current: 2,
			want:    0,
		},
		{
			name:    "skips retired player",
			players: players(false, true, false),
			current: 0,
			want:    2,
		},
		{
			name:    "skips consecutive retired players",
			players: players(false, true, true, false),
			current: 0,
			want:    3,
		},
		{
			name:    "single active player keeps the turn",
			players: players(false, true, true),
			current: 0,
			want:    0,
		},
		{
			name:    "all retired leaves pointer unchanged",
			players: players(true, true, true),
			current: 1,
			want:    1,
		},
		{
			name:    "empty sequence",
			players: nil,
			current: 0,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextActiveIndex(tt.players, tt.current))
		})
	}
}
