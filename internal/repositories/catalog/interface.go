package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go careerparty/internal/repositories/catalog Repository

import (
	"context"
)

// Repository defines read access to the card catalog. The game engine only
// ever reads; writes happen through seeding and the admin surface.
type Repository interface {
	// ListJobCards returns every job card
	ListJobCards(ctx context.Context, input *ListJobCardsInput) (*ListJobCardsOutput, error)

	// ListSkillCards returns every skill card
	ListSkillCards(ctx context.Context, input *ListSkillCardsInput) (*ListSkillCardsOutput, error)

	// ListMissions returns mission cards, filtered to the special or
	// non-special subset
	ListMissions(ctx context.Context, input *ListMissionsInput) (*ListMissionsOutput, error)

	// ListCategories returns mission categories in sort order
	ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)

	// SaveCard inserts or replaces a card
	SaveCard(ctx context.Context, input *SaveCardInput) error

	// SaveCategory inserts or replaces a mission category
	SaveCategory(ctx context.Context, input *SaveCategoryInput) error
}
