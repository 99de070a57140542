package game

import (
	"context"
	"errors"
	"log"
	"sort"

	"careerparty/internal/models"
	"careerparty/internal/repositories/catalog"
)

// SelectJob assigns a job card to a player in the lobby. Unknown sessions
// and players are silent no-ops.
func (s *service) SelectJob(ctx context.Context, input *SelectJobInput) (*SelectJobOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &SelectJobOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted || state.session.GameStarted {
		return &SelectJobOutput{}, nil
	}

	session := state.session

	player := session.FindPlayer(input.PlayerID)
	if player == nil {
		return &SelectJobOutput{}, nil
	}

	player.Jobs = []int{input.JobID}
	player.Points = map[int]int{input.JobID: 0}
	player.JobSelected = true

	s.registry.Broadcast(session.ID, &JobSelectedEvent{
		Type:     EventJobSelected,
		PlayerID: player.ID,
		JobID:    input.JobID,
		Session:  session,
	}, "")

	log.Printf("Player %s selected job %d in session %s", player.ID, input.JobID, session.ID)

	return &SelectJobOutput{Success: true}, nil
}

// StartGame transitions a session from lobby to play. Every player must
// have selected a job first.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &StartGameOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted || state.session.GameStarted {
		return &StartGameOutput{}, nil
	}

	session := state.session

	for _, p := range session.Players {
		if !p.JobSelected {
			return nil, ErrAllPlayersMustSelectJob
		}
	}

	session.GameStarted = true

	s.registry.Broadcast(session.ID, &GameStartedEvent{
		Type:    EventGameStarted,
		Session: session,
	}, "")

	log.Printf("Game started in session %s", session.ID)

	return &StartGameOutput{Success: true}, nil
}

// RollDice rolls the die and draws that many cards from the candidate
// pool. The catalog read is a suspension point, so the session is looked
// up again and re-validated before any state changes.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &RollDiceOutput{}, nil
	}

	state.mu.Lock()
	started := !state.deleted && state.session.GameStarted
	state.mu.Unlock()

	if !started {
		return &RollDiceOutput{}, nil
	}

	skills, err := s.catalogRepo.ListSkillCards(ctx, &catalog.ListSkillCardsInput{})
	if err != nil {
		return nil, err
	}

	regular, err := s.catalogRepo.ListMissions(ctx, &catalog.ListMissionsInput{IsSpecial: false})
	if err != nil {
		return nil, err
	}

	specials, err := s.catalogRepo.ListMissions(ctx, &catalog.ListMissionsInput{IsSpecial: true})
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted || !state.session.GameStarted {
		return &RollDiceOutput{}, nil
	}

	session := state.session

	dieValue := s.diceRoller.Roll(s.config.DiceSides)

	allCards := make([]*models.Card, 0, len(skills.Cards)+len(regular.Cards))
	allCards = append(allCards, skills.Cards...)
	allCards = append(allCards, regular.Cards...)

	pool := make([]*models.Card, 0, len(allCards))
	for _, c := range allCards {
		if !session.HasUsedCard(c.ID) {
			pool = append(pool, c)
		}
	}

	resetUsed := len(pool) <= s.config.ExhaustionBuffer
	if resetUsed {
		pool = append(pool[:0], allCards...)
	}

	if len(specials.Cards) > 0 && s.diceRoller.Chance(s.config.SpecialChance) {
		special := specials.Cards[0]
		if resetUsed || !session.HasUsedCard(special.ID) {
			// Catalog stores it as a mission; clients see kind special
			tagged := *special
			tagged.Type = models.CardTypeSpecial
			pool = append(pool, &tagged)
		}
	}

	if len(pool) == 0 {
		return nil, ErrEmptyCatalog
	}

	// The first mutation happens after the pool is known drawable
	if resetUsed {
		log.Printf("Card pool exhausted in session %s, resetting used cards", session.ID)
		session.UsedCardIDs = []int{}
	}
	session.DiceValue = &dieValue

	// Partial shuffle draws without replacement
	count := dieValue
	if count > len(pool) {
		count = len(pool)
	}

	for i := 0; i < count; i++ {
		j := i + s.diceRoller.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	drawn := make([]*models.Card, count)
	copy(drawn, pool[:count])
	session.DrawnCards = drawn

	s.registry.Broadcast(session.ID, &DiceRolledEvent{
		Type:       EventDiceRolled,
		DiceValue:  dieValue,
		DrawnCards: drawn,
		Session:    session,
	}, "")

	log.Printf("Dice rolled: %d in session %s", dieValue, session.ID)

	return &RollDiceOutput{DiceValue: dieValue, DrawnCards: drawn}, nil
}

// SelectCard resolves one of the currently drawn cards for the
// current-turn player. Out-of-turn or stale selections are silent no-ops
// so reconnection races do not surface errors.
func (s *service) SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &SelectCardOutput{}, nil
	}

	// The finish check needs job targets, and the read has to come
	// before any mutation
	jobs, err := s.catalogRepo.ListJobCards(ctx, &catalog.ListJobCardsInput{})
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &SelectCardOutput{}, nil
	}

	session := state.session

	current := session.CurrentPlayer()
	if current == nil || current.ID != input.ActorID {
		return &SelectCardOutput{}, nil
	}

	var card *models.Card
	for _, c := range session.DrawnCards {
		if c.ID == input.CardID {
			card = c
			break
		}
	}
	if card == nil {
		return &SelectCardOutput{}, nil
	}

	session.SelectedCardsHistory = append(session.SelectedCardsHistory, &models.HistoryEntry{
		PlayerID:   current.ID,
		PlayerName: current.Name,
		Card:       card,
		TurnNumber: len(session.SelectedCardsHistory) + 1,
	})

	if !session.HasUsedCard(card.ID) {
		session.UsedCardIDs = append(session.UsedCardIDs, card.ID)
	}

	if card.Type == models.CardTypeSkill {
		s.resolveSkillCard(session, current, card, jobs.Cards)
	} else {
		s.registry.Broadcast(session.ID, &CardSelectedEvent{
			Type:    EventCardSelected,
			Card:    card,
			Session: session,
		}, "")
	}

	log.Printf("Card selected in session %s: %s", session.ID, card.Type)

	return &SelectCardOutput{Applied: true}, nil
}

// resolveSkillCard scores a skill card for the player, runs the finish
// check, and delivers the result. Score details go to the acting player
// only; everyone else gets a state refresh. Called with the session lock
// held.
func (s *service) resolveSkillCard(session *models.Session, player *models.Player, card *models.Card, jobCards []*models.Card) {
	result := &CardSelectedEvent{
		Type:    EventCardSelected,
		Card:    card,
		Session: session,
	}

	// Finished players keep their turn in the rotation but their points
	// and skill set are frozen
	if player.Finished || player.HasSelectedSkill(card.ID) {
		result.AlreadySelected = true
	} else {
		for _, jobID := range player.Jobs {
			if card.MatchesJob(jobID) {
				result.Matched = true
				player.Points[jobID]++
			}
		}
		player.SelectedSkillCardIDs = append(player.SelectedSkillCardIDs, card.ID)
	}

	result.PointsUpdated = player.Points

	hasWon := true
	for _, jobID := range player.Jobs {
		for _, job := range jobCards {
			if job.ID == jobID && player.Points[jobID] < job.TargetPoints {
				hasWon = false
			}
		}
	}

	if hasWon && len(player.Jobs) > 0 && !player.Finished {
		player.Finished = true
		rank := len(session.FinishedPlayers) + 1
		player.FinishRank = &rank
		session.FinishedPlayers = append(session.FinishedPlayers, player.ID)

		result.PlayerFinished = true
		result.FinishRank = rank
		result.PlayerName = player.Name

		active := session.ActivePlayers()
		if allFinished(active) {
			session.AllFinished = true
			result.AllFinished = true
			result.FinalRankings = finalRankings(active)
		}

		log.Printf("Player %s finished with rank %d in session %s", player.ID, rank, session.ID)
	}

	s.registry.SendToPlayer(session.ID, player.ID, result)

	s.registry.Broadcast(session.ID, &CardSelectedByOtherEvent{
		Type:     EventCardSelectedByOther,
		PlayerID: player.ID,
		CardType: models.CardTypeSkill,
		Session:  session,
	}, player.ID)

	if result.AllFinished {
		s.registry.Broadcast(session.ID, &GameCompletedEvent{
			Type:          EventGameCompleted,
			FinalRankings: result.FinalRankings,
			Session:       session,
		}, "")
	}
}

// allFinished reports whether every player in the list has finished
func allFinished(players []*models.Player) bool {
	for _, p := range players {
		if !p.Finished {
			return false
		}
	}
	return true
}

// finalRankings sorts the finished players ascending by finish rank
func finalRankings(players []*models.Player) []*models.RankedPlayer {
	ranked := make([]*models.RankedPlayer, 0, len(players))
	for _, p := range players {
		if p.FinishRank == nil {
			continue
		}
		ranked = append(ranked, &models.RankedPlayer{
			ID:   p.ID,
			Name: p.Name,
			Rank: *p.FinishRank,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Rank < ranked[j].Rank
	})

	return ranked
}

// NextTurn clears the drawn set and die value and advances the turn
// pointer to the next non-retired player
func (s *service) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &NextTurnOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &NextTurnOutput{}, nil
	}

	session := state.session

	session.DrawnCards = []*models.Card{}
	session.DiceValue = nil
	session.CurrentPlayerIndex = nextActiveIndex(session.Players, session.CurrentPlayerIndex)

	s.registry.Broadcast(session.ID, &TurnChangedEvent{
		Type:               EventTurnChanged,
		CurrentPlayerIndex: session.CurrentPlayerIndex,
		CurrentPlayer:      session.CurrentPlayer(),
		Session:            session,
	}, "")

	log.Printf("Turn changed in session %s", session.ID)

	return &NextTurnOutput{CurrentPlayerIndex: session.CurrentPlayerIndex}, nil
}

// Resign retires a player and transfers their jobs to the target player.
// The target's counters for the transferred jobs restart at zero. Unknown
// players are silent no-ops.
func (s *service) Resign(ctx context.Context, input *ResignInput) (*ResignOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &ResignOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &ResignOutput{}, nil
	}

	session := state.session

	retiring := session.FindPlayer(input.PlayerID)
	target := session.FindPlayer(input.TargetPlayerID)
	if retiring == nil || target == nil {
		return &ResignOutput{}, nil
	}

	target.Jobs = append(target.Jobs, retiring.Jobs...)
	for _, jobID := range retiring.Jobs {
		target.Points[jobID] = 0
	}

	retiring.Retired = true
	retiring.Jobs = []int{}
	retiring.Points = map[int]int{}

	s.registry.Broadcast(session.ID, &PlayerRetiredEvent{
		Type:            EventPlayerRetired,
		RetiredPlayerID: retiring.ID,
		TargetPlayerID:  target.ID,
		Session:         session,
	}, "")

	log.Printf("Player %s resigned in session %s, jobs moved to %s", retiring.ID, session.ID, target.ID)

	// Retiring the last unfinished player can complete the game
	active := session.ActivePlayers()
	if session.GameStarted && !session.AllFinished && len(active) > 0 && allFinished(active) {
		session.AllFinished = true
		s.registry.Broadcast(session.ID, &GameCompletedEvent{
			Type:          EventGameCompleted,
			FinalRankings: finalRankings(active),
			Session:       session,
		}, "")
		log.Printf("Game completed in session %s after resignation", session.ID)
	}

	return &ResignOutput{Success: true}, nil
}

// ResetGame returns a session to its lobby state, keeping only player
// identities and names
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &ResetGameOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &ResetGameOutput{}, nil
	}

	session := state.session

	for _, p := range session.Players {
		p.Reset()
	}

	session.CurrentPlayerIndex = 0
	session.GameStarted = false
	session.DiceValue = nil
	session.DrawnCards = []*models.Card{}
	session.SelectedCardsHistory = []*models.HistoryEntry{}
	session.UsedCardIDs = []int{}
	session.ChatMessages = []*models.ChatMessage{}
	session.FinishedPlayers = []string{}
	session.AllFinished = false

	s.registry.Broadcast(session.ID, &GameResetEvent{
		Type:    EventGameReset,
		Session: session,
	}, "")

	log.Printf("Game reset in session %s", session.ID)

	return &ResetGameOutput{Success: true}, nil
}
