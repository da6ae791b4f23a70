package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// Custodian moves value between depositor wallets and the vault custody.
// Both operations can fail. Implementations must not assume they are
// called only once per transaction.
type Custodian interface {
	// Debit moves amount from given wallet into the custody.
	Debit(db weave.KVStore, from weave.Address, amount coin.Coin) error
	// Credit moves amount out of the custody into given wallet.
	Credit(db weave.KVStore, to weave.Address, amount coin.Coin) error
}

// CustodyAddress returns the address of the wallet holding all deposited
// funds.
func CustodyAddress() weave.Address {
	return weave.NewCondition("vault", "custody", nil).Address()
}

// CashCustodian keeps the custody in a cash extension wallet.
type CashCustodian struct {
	mover   cash.CoinMover
	custody weave.Address
}

var _ Custodian = (*CashCustodian)(nil)

func NewCashCustodian(mover cash.CoinMover) *CashCustodian {
	return &CashCustodian{
		mover:   mover,
		custody: CustodyAddress(),
	}
}

func (c *CashCustodian) Debit(db weave.KVStore, from weave.Address, amount coin.Coin) error {
	if err := c.mover.MoveCoins(db, from, c.custody, amount); err != nil {
		return errors.Wrapf(ErrTransferFailed, "debit %s from %s: %s", amount, from, err)
	}
	return nil
}

func (c *CashCustodian) Credit(db weave.KVStore, to weave.Address, amount coin.Coin) error {
	if err := c.mover.MoveCoins(db, c.custody, to, amount); err != nil {
		return errors.Wrapf(ErrTransferFailed, "credit %s to %s: %s", amount, to, err)
	}
	return nil
}
