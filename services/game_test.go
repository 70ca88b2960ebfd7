package services

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akshu/models"
	"akshu/repository"
)

func newTestGame(t *testing.T) (*GameService, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewGameService(store, store)
	svc.rng = rand.New(rand.NewSource(1))
	return svc, store
}

func TestComputePayout(t *testing.T) {
	cases := []struct {
		name       string
		prediction models.Color
		winning    models.Color
		amount     int64
		want       int64
	}{
		{"red hit pays double", models.ColorRed, models.ColorRed, 100, 200},
		{"green hit pays double", models.ColorGreen, models.ColorGreen, 30, 60},
		{"violet hit pays five times", models.ColorViolet, models.ColorViolet, 50, 250},
		{"miss pays nothing", models.ColorViolet, models.ColorRed, 100, 0},
		{"red vs green is a miss", models.ColorRed, models.ColorGreen, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, computePayout(tc.prediction, tc.winning, tc.amount))
		})
	}
}

func TestPickWinningColorDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const draws = 100000
	counts := map[models.Color]int{}
	for i := 0; i < draws; i++ {
		counts[pickWinningColor(r)]++
	}

	assert.InDelta(t, 0.45, float64(counts[models.ColorRed])/draws, 0.02)
	assert.InDelta(t, 0.45, float64(counts[models.ColorGreen])/draws, 0.02)
	assert.InDelta(t, 0.10, float64(counts[models.ColorViolet])/draws, 0.02)
}

func TestCurrentWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no rounds yet", func(t *testing.T) {
		roundID, remaining := currentWindow(nil, now)
		assert.Equal(t, uint64(1), roundID)
		assert.Equal(t, int64(60), remaining)
	})

	t.Run("mid window", func(t *testing.T) {
		last := &models.GameRound{RoundID: 7, ResultTime: now.Add(-25 * time.Second)}
		roundID, remaining := currentWindow(last, now)
		assert.Equal(t, uint64(8), roundID)
		assert.Equal(t, int64(35), remaining)
	})

	t.Run("window elapsed", func(t *testing.T) {
		last := &models.GameRound{RoundID: 7, ResultTime: now.Add(-90 * time.Second)}
		roundID, remaining := currentWindow(last, now)
		assert.Equal(t, uint64(8), roundID)
		assert.Equal(t, int64(0), remaining)
	})
}

func TestPlaceBetValidation(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.Color("blue"), 100)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PlaceBet(1, models.ColorRed, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PlaceBet(1, models.ColorRed, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Nothing was created or moved.
	assert.Empty(t, store.bets)
	assert.Empty(t, store.wallets)
}

func TestPlaceBetReservesStake(t *testing.T) {
	svc, store := newTestGame(t)

	balance, err := svc.PlaceBet(1, models.ColorRed, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(900), balance)

	bet := store.betByID(1)
	require.NotNil(t, bet)
	assert.Equal(t, models.BetPending, bet.Status)
	assert.Equal(t, uint64(1), bet.RoundFor)
}

func TestPlaceBetInsufficientFunds(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorRed, 2000)
	assert.ErrorIs(t, err, repository.ErrInsufficientFunds)

	// Starting balance untouched, no pending bet recorded.
	assert.Equal(t, int64(1000), store.walletBalance(1))
	assert.Empty(t, store.bets)
}

func TestSettleRoundWinner(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorRed, 100)
	require.NoError(t, err)

	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: time.Now()}))
	require.NoError(t, svc.SettleRound(1, models.ColorRed))

	assert.Equal(t, int64(1100), store.walletBalance(1))

	bet := store.betByID(1)
	assert.Equal(t, models.BetWon, bet.Status)
	assert.Equal(t, int64(200), bet.Winnings)
	assert.Equal(t, uint64(1), bet.ProcessedRound)

	round := store.roundByID(1)
	assert.True(t, round.IsProcessed)
	assert.Equal(t, int64(200), round.TotalPayout)
}

func TestSettleRoundLoser(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorViolet, 100)
	require.NoError(t, err)

	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: time.Now()}))
	require.NoError(t, svc.SettleRound(1, models.ColorRed))

	assert.Equal(t, int64(900), store.walletBalance(1))

	bet := store.betByID(1)
	assert.Equal(t, models.BetLost, bet.Status)
	assert.Equal(t, int64(0), bet.Winnings)

	round := store.roundByID(1)
	assert.True(t, round.IsProcessed)
	assert.Equal(t, int64(0), round.TotalPayout)
}

func TestSettleRoundVioletPayout(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorViolet, 50)
	require.NoError(t, err)

	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorViolet, ResultTime: time.Now()}))
	require.NoError(t, svc.SettleRound(1, models.ColorViolet))

	// 1000 - 50 + 250
	assert.Equal(t, int64(1200), store.walletBalance(1))
	assert.Equal(t, int64(250), store.betByID(1).Winnings)
}

func TestSettleRoundIsIdempotent(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorRed, 100)
	require.NoError(t, err)

	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: time.Now()}))
	require.NoError(t, svc.SettleRound(1, models.ColorRed))
	require.NoError(t, svc.SettleRound(1, models.ColorRed))

	// The retry credits nothing and the derived total is unchanged.
	assert.Equal(t, int64(1100), store.walletBalance(1))
	assert.Equal(t, int64(200), store.betByID(1).Winnings)
	assert.Equal(t, int64(200), store.roundByID(1).TotalPayout)
}

// flakySettleStore fails SettleBet after a set number of calls so a sweep
// can be interrupted mid-batch.
type flakySettleStore struct {
	*memStore
	failAfter int
	calls     int
}

func (f *flakySettleStore) SettleBet(bet *models.Prediction, roundID uint64, winnings int64) error {
	f.calls++
	if f.calls > f.failAfter {
		return errors.New("settle unavailable")
	}
	return f.memStore.SettleBet(bet, roundID, winnings)
}

func TestSettleRoundResumesAfterPartialFailure(t *testing.T) {
	store := newMemStore()
	flaky := &flakySettleStore{memStore: store, failAfter: 1}
	svc := NewGameService(flaky, store)

	for user := uint(1); user <= 3; user++ {
		_, err := svc.PlaceBet(user, models.ColorRed, 100)
		require.NoError(t, err)
	}
	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: time.Now()}))

	// The sweep dies on the second bet: the round stays unprocessed, the
	// first bet is settled and the rest are still pending.
	require.Error(t, svc.SettleRound(1, models.ColorRed))
	assert.False(t, store.roundByID(1).IsProcessed)
	assert.Equal(t, models.BetWon, store.betByID(1).Status)
	assert.Equal(t, models.BetPending, store.betByID(2).Status)
	assert.Equal(t, models.BetPending, store.betByID(3).Status)
	assert.Equal(t, int64(1100), store.walletBalance(1))

	// The retry picks up where the sweep stopped without paying the first
	// winner twice.
	flaky.failAfter = 1 << 30
	require.NoError(t, svc.SettleRound(1, models.ColorRed))
	for user := uint(1); user <= 3; user++ {
		assert.Equal(t, models.BetWon, store.betByID(user).Status)
		assert.Equal(t, int64(1100), store.walletBalance(user))
	}
	round := store.roundByID(1)
	assert.True(t, round.IsProcessed)
	assert.Equal(t, int64(600), round.TotalPayout)
}

func TestSettleRoundSkipsLaterCohorts(t *testing.T) {
	svc, store := newTestGame(t)

	_, err := svc.PlaceBet(1, models.ColorRed, 100)
	require.NoError(t, err)

	// Round 1 closes; the next bet belongs to round 2.
	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: time.Now()}))
	_, err = svc.PlaceBet(1, models.ColorRed, 100)
	require.NoError(t, err)

	require.NoError(t, svc.SettleRound(1, models.ColorRed))

	first := store.betByID(1)
	second := store.betByID(2)
	assert.Equal(t, models.BetWon, first.Status)
	assert.Equal(t, models.BetPending, second.Status)
	assert.Equal(t, uint64(2), second.RoundFor)
}

func TestGenerateRoundIDsAreMonotonic(t *testing.T) {
	svc, _ := newTestGame(t)

	for want := uint64(1); want <= 5; want++ {
		round, err := svc.GenerateRound()
		require.NoError(t, err)
		assert.Equal(t, want, round.RoundID)
		assert.True(t, round.WinningColor.Valid())
	}
}

func TestRunRoundCycleConservation(t *testing.T) {
	svc, store := newTestGame(t)

	stakes := map[uint]int64{1: 100, 2: 300, 3: 50}
	picks := map[uint]models.Color{1: models.ColorRed, 2: models.ColorGreen, 3: models.ColorViolet}
	for user, stake := range stakes {
		_, err := svc.PlaceBet(user, picks[user], stake)
		require.NoError(t, err)
	}

	round, err := svc.RunRoundCycle()
	require.NoError(t, err)
	require.True(t, store.roundByID(round.RoundID).IsProcessed)

	// Every bet reaches a terminal status and the recorded payout matches
	// the sum credited to winners.
	var wonTotal int64
	for id := uint(1); id <= 3; id++ {
		bet := store.betByID(id)
		require.NotEqual(t, models.BetPending, bet.Status)
		if bet.Status == models.BetWon {
			wonTotal += bet.Winnings
		}
	}
	assert.Equal(t, wonTotal, store.roundByID(round.RoundID).TotalPayout)

	for user, stake := range stakes {
		want := repository.StartingBonus - stake + computePayout(picks[user], round.WinningColor, stake)
		assert.Equal(t, want, store.walletBalance(user))
	}
}

func TestStatusReportsWindowAndHistory(t *testing.T) {
	svc, store := newTestGame(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	status, err := svc.Status()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), status.CurrentRoundID)
	assert.Equal(t, int64(60), status.TimeRemaining)
	assert.Empty(t, status.PastResults)

	// Twelve processed rounds; only the last ten come back, newest first.
	for i := uint64(1); i <= 12; i++ {
		require.NoError(t, store.CreateRound(&models.GameRound{
			RoundID:      i,
			WinningColor: models.ColorGreen,
			ResultTime:   fixed.Add(-40 * time.Second),
		}))
		require.NoError(t, store.MarkRoundProcessed(i))
	}

	status, err = svc.Status()
	require.NoError(t, err)
	assert.Equal(t, uint64(13), status.CurrentRoundID)
	assert.Equal(t, int64(20), status.TimeRemaining)
	require.Len(t, status.PastResults, 10)
	assert.Equal(t, uint64(12), status.PastResults[0].RoundID)
	assert.Equal(t, uint64(3), status.PastResults[9].RoundID)
}

func TestCycleDue(t *testing.T) {
	svc, store := newTestGame(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	due, err := svc.CycleDue()
	require.NoError(t, err)
	assert.True(t, due, "first round is always due")

	require.NoError(t, store.CreateRound(&models.GameRound{RoundID: 1, WinningColor: models.ColorRed, ResultTime: fixed}))
	due, err = svc.CycleDue()
	require.NoError(t, err)
	assert.False(t, due, "window just opened")

	svc.now = func() time.Time { return fixed.Add(61 * time.Second) }
	due, err = svc.CycleDue()
	require.NoError(t, err)
	assert.True(t, due, "window elapsed")
}
