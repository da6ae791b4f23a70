package app

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

var (
	_ weave.Tx      = (*Tx)(nil)
	_ cash.FeeTx    = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// TxDecoder unmarshals a vaultd transaction.
func TxDecoder(bz []byte) (weave.Tx, error) {
	var tx Tx
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &tx, nil
}

// GetMsg returns the message carried by the sum field. Every oneof variant
// declared in codec.proto must be listed here.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container is empty")
	}

	switch t := sum.(type) {
	case *Tx_CashSendMsg:
		return t.CashSendMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	case *Tx_VaultInitializeMsg:
		return t.VaultInitializeMsg, nil
	case *Tx_VaultInitializeV2Msg:
		return t.VaultInitializeV2Msg, nil
	case *Tx_VaultInitializeV3Msg:
		return t.VaultInitializeV3Msg, nil
	case *Tx_VaultGrantRoleMsg:
		return t.VaultGrantRoleMsg, nil
	case *Tx_VaultRevokeRoleMsg:
		return t.VaultRevokeRoleMsg, nil
	case *Tx_VaultSetDepositFeeMsg:
		return t.VaultSetDepositFeeMsg, nil
	case *Tx_VaultPauseDepositsMsg:
		return t.VaultPauseDepositsMsg, nil
	case *Tx_VaultUnpauseDepositsMsg:
		return t.VaultUnpauseDepositsMsg, nil
	case *Tx_VaultDepositMsg:
		return t.VaultDepositMsg, nil
	case *Tx_VaultWithdrawMsg:
		return t.VaultWithdrawMsg, nil
	case *Tx_VaultSetYieldRateMsg:
		return t.VaultSetYieldRateMsg, nil
	case *Tx_VaultClaimYieldMsg:
		return t.VaultClaimYieldMsg, nil
	case *Tx_VaultSetWithdrawalDelayMsg:
		return t.VaultSetWithdrawalDelayMsg, nil
	case *Tx_VaultRequestWithdrawalMsg:
		return t.VaultRequestWithdrawalMsg, nil
	case *Tx_VaultExecuteWithdrawalMsg:
		return t.VaultExecuteWithdrawalMsg, nil
	case *Tx_VaultEmergencyWithdrawMsg:
		return t.VaultEmergencyWithdrawMsg, nil
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown message type %T", sum)
}

// GetSignBytes returns the serialized transaction without any signature,
// so that each signer signs the same payload.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	sigs := tx.Signatures
	tx.Signatures = nil
	bz, err := tx.Marshal()
	tx.Signatures = sigs
	return bz, err
}
