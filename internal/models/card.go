package models

// CardType discriminates the kinds of cards a player can draw
type CardType string

const (
	// CardTypeJob is a job card a player holds for the whole game
	CardTypeJob CardType = "job"

	// CardTypeSkill is a skill card that may score points against a job
	CardTypeSkill CardType = "skill"

	// CardTypeMission is a discussion mission with no scoring effect
	CardTypeMission CardType = "mission"

	// CardTypeSpecial is a mission that forces a resignation transfer
	CardTypeSpecial CardType = "special"
)

// Card is an immutable catalog record. Which fields are populated depends
// on the card type: job cards carry TargetPoints, skill cards carry
// MatchesJobs, missions carry the category and target prompts.
type Card struct {
	// ID is the catalog identifier, unique within a card type's table
	ID int `json:"id"`

	// Type is the kind of card
	Type CardType `json:"type"`

	// NameEN is the English display name
	NameEN string `json:"name_en"`

	// NameJA is the Japanese display name
	NameJA string `json:"name_ja"`

	// ImageURL is an optional illustration
	ImageURL string `json:"imageUrl,omitempty"`

	// DescriptionHTMLEN is the English description markup
	DescriptionHTMLEN string `json:"descriptionHtml_en"`

	// DescriptionHTMLJA is the Japanese description markup
	DescriptionHTMLJA string `json:"descriptionHtml_ja"`

	// TargetPoints is the points needed to finish a job card
	TargetPoints int `json:"targetPoints,omitempty"`

	// MatchesJobs lists the job card IDs this skill card scores against
	MatchesJobs []int `json:"matchesJobs,omitempty"`

	// CategoryID groups missions for the catalog screens
	CategoryID int `json:"categoryId,omitempty"`

	// TargetEN is the English discussion prompt for missions
	TargetEN string `json:"target_en,omitempty"`

	// TargetJA is the Japanese discussion prompt for missions
	TargetJA string `json:"target_ja,omitempty"`

	// IsSpecial marks the mission subset that triggers a resignation
	IsSpecial bool `json:"isSpecial,omitempty"`
}

// MatchesJob reports whether a skill card scores against the given job
func (c *Card) MatchesJob(jobID int) bool {
	for _, id := range c.MatchesJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// MissionCategory groups missions on the catalog screens
type MissionCategory struct {
	// ID is the category identifier
	ID int `json:"id"`

	// NameEN is the English category name
	NameEN string `json:"name_en"`

	// NameJA is the Japanese category name
	NameJA string `json:"name_ja"`

	// DescriptionEN is the English category description
	DescriptionEN string `json:"description_en,omitempty"`

	// DescriptionJA is the Japanese category description
	DescriptionJA string `json:"description_ja,omitempty"`

	// SortOrder controls display ordering
	SortOrder int `json:"sortOrder"`
}
