package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ManualRoller implements dice.Roller with predetermined results
type ManualRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	calls     int
}

var _ dice.Roller = (*ManualRoller)(nil)

// NewManualRoller creates a roller that returns rolls in order
func NewManualRoller(rolls ...int) *ManualRoller {
	return &ManualRoller{rolls: rolls}
}

// SetRolls replaces the queued results
func (m *ManualRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Calls returns how many times Roll or RollN was invoked
func (m *ManualRoller) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Remaining returns how many queued results have not been used
func (m *ManualRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Roll implements dice.Roller.Roll
func (m *ManualRoller) Roll(size int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.next(size)
}

// RollN implements dice.Roller.RollN
func (m *ManualRoller) RollN(count, size int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	out := make([]int, count)
	for i := range out {
		v, err := m.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *ManualRoller) next(size int) (int, error) {
	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, size)
	}
	m.rollIndex++
	return roll, nil
}
