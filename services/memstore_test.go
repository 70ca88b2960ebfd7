package services

import (
	"fmt"
	"sync"
	"time"

	"akshu/models"
	"akshu/repository"
)

// memStore is a mutex-serialized in-memory stand-in for the postgres
// repositories. It mirrors their atomicity contracts: conditional debit,
// insert-if-absent wallet creation and status-guarded settlement.
type memStore struct {
	mu      sync.Mutex
	wallets map[uint]*models.Wallet
	rounds  []models.GameRound
	bets    []*models.Prediction
	nextBet uint
}

func newMemStore() *memStore {
	return &memStore{wallets: map[uint]*models.Wallet{}}
}

func (m *memStore) getOrCreateLocked(userID uint) *models.Wallet {
	if w, ok := m.wallets[userID]; ok {
		return w
	}
	w := &models.Wallet{UserID: userID, Balance: repository.StartingBonus}
	w.UpdatedAt = time.Now()
	m.wallets[userID] = w
	return w
}

func (m *memStore) GetOrCreate(userID uint) (*models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := *m.getOrCreateLocked(userID)
	return &w, nil
}

func (m *memStore) Debit(userID uint, amount int64, bet *models.Prediction) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallets[userID]
	if !ok {
		return 0, repository.ErrWalletNotFound
	}
	if w.Balance < amount {
		return 0, repository.ErrInsufficientFunds
	}
	w.Balance -= amount
	if bet != nil {
		m.nextBet++
		bet.ID = m.nextBet
		stored := *bet
		m.bets = append(m.bets, &stored)
	}
	return w.Balance, nil
}

func (m *memStore) LatestRound() (*models.GameRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rounds) == 0 {
		return nil, nil
	}
	r := m.rounds[len(m.rounds)-1]
	return &r, nil
}

func (m *memStore) CreateRound(round *models.GameRound) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rounds {
		if r.RoundID == round.RoundID {
			return fmt.Errorf("duplicate round id %d", round.RoundID)
		}
	}
	m.rounds = append(m.rounds, *round)
	return nil
}

func (m *memStore) RecentResults(limit int) ([]models.GameRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.GameRound
	for i := len(m.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rounds[i].IsProcessed {
			out = append(out, m.rounds[i])
		}
	}
	return out, nil
}

func (m *memStore) PendingBets(maxRound uint64, limit int) ([]models.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Prediction
	for _, b := range m.bets {
		if len(out) >= limit {
			break
		}
		if b.Status == models.BetPending && b.RoundFor <= maxRound {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memStore) SettleBet(bet *models.Prediction, roundID uint64, winnings int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bets {
		if b.ID != bet.ID {
			continue
		}
		if b.Status != models.BetPending {
			return nil
		}
		if winnings > 0 {
			w, ok := m.wallets[b.UserID]
			if !ok {
				return repository.ErrWalletNotFound
			}
			w.Balance += winnings
			b.Status = models.BetWon
			b.Winnings = winnings
		} else {
			b.Status = models.BetLost
		}
		b.ProcessedRound = roundID
		return nil
	}
	return nil
}

func (m *memStore) MarkRoundProcessed(roundID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, b := range m.bets {
		if b.ProcessedRound == roundID && b.Status == models.BetWon {
			total += b.Winnings
		}
	}
	for i := range m.rounds {
		if m.rounds[i].RoundID == roundID {
			m.rounds[i].IsProcessed = true
			m.rounds[i].TotalPayout = total
			return nil
		}
	}
	return fmt.Errorf("round %d not found", roundID)
}

func (m *memStore) walletBalance(userID uint) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wallets[userID]; ok {
		return w.Balance
	}
	return 0
}

func (m *memStore) betByID(id uint) *models.Prediction {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bets {
		if b.ID == id {
			stored := *b
			return &stored
		}
	}
	return nil
}

func (m *memStore) roundByID(roundID uint64) *models.GameRound {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rounds {
		if m.rounds[i].RoundID == roundID {
			r := m.rounds[i]
			return &r
		}
	}
	return nil
}
