package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"akshu/models"
	"akshu/repository"
)

const (
	// RoundDuration is the length of one betting window.
	RoundDuration = 60 * time.Second

	settleBatchSize = 100
	resultHistory   = 10
)

// ErrInvalidInput rejects a bet with a bad color or non-positive amount
// before any mutation happens.
var ErrInvalidInput = errors.New("invalid prediction or amount")

// colorWeights is the fixed outcome distribution: red 45%, green 45%,
// violet 10%. Weights sum to 100.
var colorWeights = []struct {
	color  models.Color
	weight int
}{
	{models.ColorRed, 45},
	{models.ColorGreen, 45},
	{models.ColorViolet, 10},
}

// GameService runs the color prediction game: it admits bets for the open
// round, generates round outcomes, settles pending bets and derives the
// client-facing countdown.
type GameService struct {
	games   repository.GameRepository
	wallets repository.WalletRepository

	mu  sync.Mutex // guards rng
	rng *rand.Rand
	now func() time.Time
}

func NewGameService(games repository.GameRepository, wallets repository.WalletRepository) *GameService {
	return &GameService{
		games:   games,
		wallets: wallets,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// pickWinningColor draws from the weighted distribution with a cumulative
// scan over a uniform roll in [0, 100).
func pickWinningColor(r *rand.Rand) models.Color {
	roll := r.Intn(100)
	for _, w := range colorWeights {
		if roll < w.weight {
			return w.color
		}
		roll -= w.weight
	}
	return colorWeights[len(colorWeights)-1].color
}

// computePayout returns 0 for a miss, 2x the stake for a red/green hit and
// 5x for a violet hit.
func computePayout(prediction, winning models.Color, amount int64) int64 {
	if prediction != winning {
		return 0
	}
	if winning == models.ColorViolet {
		return amount * 5
	}
	return amount * 2
}

// currentWindow derives the open round id and the seconds left in its
// betting window from the last recorded round.
func currentWindow(last *models.GameRound, now time.Time) (roundID uint64, remaining int64) {
	if last == nil {
		return 1, int64(RoundDuration / time.Second)
	}
	left := RoundDuration - now.Sub(last.ResultTime)
	if left < 0 {
		left = 0
	}
	return last.RoundID + 1, int64(left / time.Second)
}

// PlaceBet validates and admits a bet for the currently open round. The
// stake is reserved from the wallet and the pending bet recorded in one
// transaction; the post-debit balance is returned.
func (s *GameService) PlaceBet(userID uint, prediction models.Color, amount int64) (int64, error) {
	if !prediction.Valid() || amount <= 0 {
		return 0, ErrInvalidInput
	}

	// Wallets are created lazily on any authenticated action.
	if _, err := s.wallets.GetOrCreate(userID); err != nil {
		return 0, err
	}

	last, err := s.games.LatestRound()
	if err != nil {
		return 0, err
	}
	var roundFor uint64 = 1
	if last != nil {
		roundFor = last.RoundID + 1
	}

	bet := &models.Prediction{
		UserID:     userID,
		Prediction: prediction,
		Amount:     amount,
		Status:     models.BetPending,
		RoundFor:   roundFor,
	}

	newBalance, err := s.wallets.Debit(userID, amount, bet)
	if err != nil {
		return 0, err
	}

	log.Printf("[GAME] ✅ Bet of %d tokens on %s placed for round %d (user %d)", amount, prediction, roundFor, userID)
	return newBalance, nil
}

// GenerateRound draws the winning color, assigns the next round id and
// persists the round record. No wallets or bets are touched.
func (s *GameService) GenerateRound() (*models.GameRound, error) {
	last, err := s.games.LatestRound()
	if err != nil {
		return nil, err
	}
	var nextID uint64 = 1
	if last != nil {
		nextID = last.RoundID + 1
	}

	s.mu.Lock()
	color := pickWinningColor(s.rng)
	s.mu.Unlock()

	round := &models.GameRound{
		RoundID:      nextID,
		WinningColor: color,
		ResultTime:   s.now(),
	}
	if err := s.games.CreateRound(round); err != nil {
		return nil, fmt.Errorf("create round %d: %w", nextID, err)
	}

	log.Printf("[GAME] 🎲 Round %d result: %s recorded", nextID, color)
	return round, nil
}

// SettleRound resolves every pending bet in round cohorts up to roundID,
// crediting winners, then marks the round processed. Bets placed for a later
// round are never swept. The sweep is monotone over the pending set: a
// partial failure leaves the round unprocessed and a retry resumes where it
// stopped, skipping bets that are already settled.
func (s *GameService) SettleRound(roundID uint64, winningColor models.Color) error {
	for {
		bets, err := s.games.PendingBets(roundID, settleBatchSize)
		if err != nil {
			return err
		}
		if len(bets) == 0 {
			break
		}

		for i := range bets {
			bet := &bets[i]
			payout := computePayout(bet.Prediction, winningColor, bet.Amount)
			if err := s.games.SettleBet(bet, roundID, payout); err != nil {
				return fmt.Errorf("settle bet %d: %w", bet.ID, err)
			}
		}
	}

	if err := s.games.MarkRoundProcessed(roundID); err != nil {
		return err
	}

	log.Printf("[GAME] 💰 Round %d processed", roundID)
	return nil
}

// RunRoundCycle generates the next round and settles the bets that were
// waiting for it. This is the operator/scheduler trigger.
func (s *GameService) RunRoundCycle() (*models.GameRound, error) {
	round, err := s.GenerateRound()
	if err != nil {
		return nil, err
	}
	if err := s.SettleRound(round.RoundID, round.WinningColor); err != nil {
		return round, err
	}
	return round, nil
}

type RoundResult struct {
	RoundID uint64       `json:"round_id"`
	Color   models.Color `json:"color"`
}

type GameStatus struct {
	CurrentRoundID uint64        `json:"current_round_id"`
	TimeRemaining  int64         `json:"time_remaining"`
	PastResults    []RoundResult `json:"past_results"`
}

// Status is a pure read derivation: the open round id, seconds left in its
// window and the last ten processed results, newest first. It triggers no
// generation or settlement.
func (s *GameService) Status() (*GameStatus, error) {
	last, err := s.games.LatestRound()
	if err != nil {
		return nil, err
	}
	roundID, remaining := currentWindow(last, s.now())

	rounds, err := s.games.RecentResults(resultHistory)
	if err != nil {
		return nil, err
	}
	results := make([]RoundResult, 0, len(rounds))
	for _, r := range rounds {
		results = append(results, RoundResult{RoundID: r.RoundID, Color: r.WinningColor})
	}

	return &GameStatus{
		CurrentRoundID: roundID,
		TimeRemaining:  remaining,
		PastResults:    results,
	}, nil
}

// CycleDue reports whether the scheduler should run the next round cycle:
// either no round exists yet or the current betting window has elapsed.
func (s *GameService) CycleDue() (bool, error) {
	last, err := s.games.LatestRound()
	if err != nil {
		return false, err
	}
	if last == nil {
		return true, nil
	}
	_, remaining := currentWindow(last, s.now())
	return remaining == 0, nil
}
