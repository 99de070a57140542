package catalog

import (
	"careerparty/internal/models"
)

// ListJobCardsInput contains parameters for listing job cards
type ListJobCardsInput struct{}

// ListJobCardsOutput contains the job cards
type ListJobCardsOutput struct {
	Cards []*models.Card
}

// ListSkillCardsInput contains parameters for listing skill cards
type ListSkillCardsInput struct{}

// ListSkillCardsOutput contains the skill cards
type ListSkillCardsOutput struct {
	Cards []*models.Card
}

// ListMissionsInput contains parameters for listing missions
type ListMissionsInput struct {
	// IsSpecial selects the special subset when true, the regular
	// subset when false
	IsSpecial bool
}

// ListMissionsOutput contains the mission cards
type ListMissionsOutput struct {
	Cards []*models.Card
}

// ListCategoriesInput contains parameters for listing mission categories
type ListCategoriesInput struct{}

// ListCategoriesOutput contains the mission categories
type ListCategoriesOutput struct {
	Categories []*models.MissionCategory
}

// SaveCardInput contains the card to persist
type SaveCardInput struct {
	Card *models.Card
}

// SaveCategoryInput contains the category to persist
type SaveCategoryInput struct {
	Category *models.MissionCategory
}
