// Package inmemory provides a FungibleLedger implementation backed by
// in-process maps. It stands in for the external token ledger the engine
// settles against: transfers either fully apply or fail without effect.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
)

type balanceKey struct {
	account string
	token   domain.TokenKind
}

type allowanceKey struct {
	owner   string
	spender string
	token   domain.TokenKind
}

type ledger struct {
	balances   map[balanceKey]uint64
	allowances map[allowanceKey]uint64
	lock       *sync.RWMutex
}

// NewLedger returns an empty in-memory fungible ledger.
func NewLedger() ports.FungibleLedger {
	return &ledger{
		balances:   map[balanceKey]uint64{},
		allowances: map[allowanceKey]uint64{},
		lock:       &sync.RWMutex{},
	}
}

func (l *ledger) BalanceOf(
	_ context.Context, account string, token domain.TokenKind,
) (uint64, error) {
	if account == "" {
		return 0, ports.ErrUnknownAccount
	}
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.balances[balanceKey{account, token}], nil
}

func (l *ledger) Transfer(
	_ context.Context, from, to string, amount uint64, token domain.TokenKind,
) error {
	if from == "" || to == "" {
		return ports.ErrUnknownAccount
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.move(from, to, amount, token)
}

func (l *ledger) TransferFrom(
	_ context.Context, spender, owner, to string, amount uint64,
	token domain.TokenKind,
) error {
	if spender == "" || owner == "" || to == "" {
		return ports.ErrUnknownAccount
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	key := allowanceKey{owner, spender, token}
	if l.allowances[key] < amount {
		return ports.ErrInsufficientAllowance
	}
	if err := l.move(owner, to, amount, token); err != nil {
		return err
	}
	l.allowances[key] -= amount
	return nil
}

func (l *ledger) Approve(
	_ context.Context, owner, spender string, amount uint64,
	token domain.TokenKind,
) error {
	if owner == "" || spender == "" {
		return ports.ErrUnknownAccount
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	l.allowances[allowanceKey{owner, spender, token}] = amount
	return nil
}

func (l *ledger) Allowance(
	_ context.Context, owner, spender string, token domain.TokenKind,
) (uint64, error) {
	if owner == "" || spender == "" {
		return 0, ports.ErrUnknownAccount
	}
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.allowances[allowanceKey{owner, spender, token}], nil
}

func (l *ledger) Mint(
	_ context.Context, account string, amount uint64, token domain.TokenKind,
) error {
	if account == "" {
		return ports.ErrUnknownAccount
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	l.balances[balanceKey{account, token}] += amount
	return nil
}

// move applies a balance transfer, callers must hold the write lock.
func (l *ledger) move(
	from, to string, amount uint64, token domain.TokenKind,
) error {
	fromKey := balanceKey{from, token}
	if l.balances[fromKey] < amount {
		return fmt.Errorf(
			"%w: %s has %d %s, need %d",
			ports.ErrInsufficientFunds, from, l.balances[fromKey], token, amount,
		)
	}
	l.balances[fromKey] -= amount
	l.balances[balanceKey{to, token}] += amount
	return nil
}
