package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"careerparty/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	cardKeyPrefix     = "card:"
	categoryKeyPrefix = "category:"

	// Index sets per card kind
	jobCardsKey        = "cards:job"
	skillCardsKey      = "cards:skill"
	regularMissionsKey = "cards:mission:regular"
	specialMissionsKey = "cards:mission:special"
	categoriesKey      = "categories"
)

// ErrCardNotFound is returned when a card is not found
var ErrCardNotFound = errors.New("card not found")

// Config holds configuration for the Redis catalog repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// cardKey builds the storage key for a card
func cardKey(cardType models.CardType, id int) string {
	return fmt.Sprintf("%s%s:%d", cardKeyPrefix, cardType, id)
}

// indexKey returns the index set a card belongs to
func indexKey(card *models.Card) (string, error) {
	switch card.Type {
	case models.CardTypeJob:
		return jobCardsKey, nil
	case models.CardTypeSkill:
		return skillCardsKey, nil
	case models.CardTypeMission:
		if card.IsSpecial {
			return specialMissionsKey, nil
		}
		return regularMissionsKey, nil
	default:
		return "", fmt.Errorf("unknown card type %q", card.Type)
	}
}

// SaveCard persists a card to Redis
func (r *redisRepository) SaveCard(ctx context.Context, input *SaveCardInput) error {
	if input == nil || input.Card == nil {
		return errors.New("input and card cannot be nil")
	}

	index, err := indexKey(input.Card)
	if err != nil {
		return err
	}

	// Marshal the card to JSON
	cardJSON, err := json.Marshal(input.Card)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	// Save the card and index it in one round trip
	pipe := r.client.Pipeline()
	pipe.Set(ctx, cardKey(input.Card.Type, input.Card.ID), cardJSON, 0)
	pipe.SAdd(ctx, index, input.Card.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// SaveCategory persists a mission category to Redis
func (r *redisRepository) SaveCategory(ctx context.Context, input *SaveCategoryInput) error {
	if input == nil || input.Category == nil {
		return errors.New("input and category cannot be nil")
	}

	categoryJSON, err := json.Marshal(input.Category)
	if err != nil {
		return fmt.Errorf("failed to marshal category: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", categoryKeyPrefix, input.Category.ID), categoryJSON, 0)
	pipe.SAdd(ctx, categoriesKey, input.Category.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return nil
}

// listCards fetches every card indexed under the given set
func (r *redisRepository) listCards(ctx context.Context, index string, cardType models.CardType) ([]*models.Card, error) {
	ids, err := r.client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get card IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Card{}, nil
	}

	// Get all cards in one round trip
	pipe := r.client.Pipeline()
	cardCommands := make([]*redis.StringCmd, 0, len(ids))

	for _, id := range ids {
		cardCommands = append(cardCommands, pipe.Get(ctx, fmt.Sprintf("%s%s:%s", cardKeyPrefix, cardType, id)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}

	cards := make([]*models.Card, 0, len(ids))
	for _, cmd := range cardCommands {
		cardJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Card was removed between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get card: %w", err)
		}

		var card models.Card
		if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card: %w", err)
		}

		cards = append(cards, &card)
	}

	// Set members come back unordered
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].ID < cards[j].ID
	})

	return cards, nil
}

// ListJobCards retrieves all job cards from Redis
func (r *redisRepository) ListJobCards(ctx context.Context, input *ListJobCardsInput) (*ListJobCardsOutput, error) {
	cards, err := r.listCards(ctx, jobCardsKey, models.CardTypeJob)
	if err != nil {
		return nil, err
	}

	return &ListJobCardsOutput{Cards: cards}, nil
}

// ListSkillCards retrieves all skill cards from Redis
func (r *redisRepository) ListSkillCards(ctx context.Context, input *ListSkillCardsInput) (*ListSkillCardsOutput, error) {
	cards, err := r.listCards(ctx, skillCardsKey, models.CardTypeSkill)
	if err != nil {
		return nil, err
	}

	return &ListSkillCardsOutput{Cards: cards}, nil
}

// ListMissions retrieves the special or regular mission cards from Redis
func (r *redisRepository) ListMissions(ctx context.Context, input *ListMissionsInput) (*ListMissionsOutput, error) {
	index := regularMissionsKey
	if input != nil && input.IsSpecial {
		index = specialMissionsKey
	}

	cards, err := r.listCards(ctx, index, models.CardTypeMission)
	if err != nil {
		return nil, err
	}

	return &ListMissionsOutput{Cards: cards}, nil
}

// ListCategories retrieves all mission categories from Redis
func (r *redisRepository) ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	ids, err := r.client.SMembers(ctx, categoriesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get category IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListCategoriesOutput{Categories: []*models.MissionCategory{}}, nil
	}

	pipe := r.client.Pipeline()
	categoryCommands := make([]*redis.StringCmd, 0, len(ids))

	for _, id := range ids {
		categoryCommands = append(categoryCommands, pipe.Get(ctx, categoryKeyPrefix+id))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*models.MissionCategory, 0, len(ids))
	for _, cmd := range categoryCommands {
		categoryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get category: %w", err)
		}

		var category models.MissionCategory
		if err := json.Unmarshal([]byte(categoryJSON), &category); err != nil {
			return nil, fmt.Errorf("failed to unmarshal category: %w", err)
		}

		categories = append(categories, &category)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	return &ListCategoriesOutput{Categories: categories}, nil
}
