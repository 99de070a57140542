package models

// Player represents a participant in a game session
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Jobs holds the job card IDs assigned to the player. Normally one;
	// a resignation transfer can grow it to two.
	Jobs []int `json:"jobs"`

	// Points maps a job card ID to the points accumulated for it
	Points map[int]int `json:"points"`

	// Retired indicates the player resigned and no longer takes turns
	Retired bool `json:"retired"`

	// JobSelected indicates the player has picked a job in the lobby
	JobSelected bool `json:"jobSelected"`

	// SelectedSkillCardIDs tracks skill cards already consumed by this
	// player so a repeat draw scores nothing
	SelectedSkillCardIDs []int `json:"selectedSkillCardIds"`

	// Finished indicates the player reached every held job's target
	Finished bool `json:"finished"`

	// FinishRank is the 1-based order in which the player finished,
	// nil until then
	FinishRank *int `json:"finishRank"`
}

// NewPlayer creates a player with pre-game defaults
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:                   id,
		Name:                 name,
		Jobs:                 []int{},
		Points:               map[int]int{},
		SelectedSkillCardIDs: []int{},
	}
}

// Reset returns the player to pre-job-selection defaults, keeping only
// identity and name
func (p *Player) Reset() {
	p.Jobs = []int{}
	p.Points = map[int]int{}
	p.Retired = false
	p.JobSelected = false
	p.SelectedSkillCardIDs = []int{}
	p.Finished = false
	p.FinishRank = nil
}

// HasSelectedSkill reports whether the player already consumed the skill card
func (p *Player) HasSelectedSkill(cardID int) bool {
	for _, id := range p.SelectedSkillCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}
