package game

import (
	"careerparty/internal/models"
)

// nextActiveIndex returns the index of the first non-retired player after
// current, wrapping around the sequence. When every player is retired the
// rotation has nowhere to go and current is returned unchanged.
func nextActiveIndex(players []*models.Player, current int) int {
	if len(players) == 0 {
		return current
	}

	for step := 1; step <= len(players); step++ {
		idx := (current + step) % len(players)
		if !players[idx].Retired {
			return idx
		}
	}

	return current
}
