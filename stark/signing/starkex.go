package signing

import (
	"errors"
	"fmt"
	"time"

	"github.com/yanue/starkex"

	"github.com/starkbot/gostark/stark/types"
)

// isoFormat is the millisecond ISO-8601 layout used in signed payloads.
const isoFormat = "2006-01-02T15:04:05.000Z"

// LocalSigner signs actions with a locally held STARK private key via the
// starkex curve library. It is immutable after construction and safe for
// concurrent use.
type LocalSigner struct {
	network    types.Network
	privateKey string
}

// NewLocalSigner binds a STARK private key to one network. The key is held
// for the life of the signer and never logged.
func NewLocalSigner(network types.Network, starkPrivateKey string) (*LocalSigner, error) {
	if starkPrivateKey == "" {
		return nil, errors.New("stark private key is empty")
	}
	return &LocalSigner{network: network, privateKey: starkPrivateKey}, nil
}

func (s *LocalSigner) SignOrder(p OrderSignParams) (string, error) {
	// The order scheme takes its expiration as epoch milliseconds while the
	// wire payload carries ISO-8601; convert here so callers deal in one
	// format only.
	exp, err := time.Parse(isoFormat, p.Expiration)
	if err != nil {
		return "", fmt.Errorf("invalid order expiration %q: %w", p.Expiration, err)
	}
	sig, err := starkex.OrderSign(s.privateKey, starkex.OrderSignParam{
		NetworkId:  int(s.network),
		PositionId: p.PositionID,
		Market:     p.Market,
		Side:       p.Side,
		HumanSize:  p.HumanSize,
		HumanPrice: p.HumanPrice,
		LimitFee:   p.LimitFee,
		ClientId:   p.ClientID,
		Expiration: exp.UnixMilli(),
		Ex:         starkex.Dydx,
	})
	if err != nil {
		return "", fmt.Errorf("stark order sign: %w", err)
	}
	return sig, nil
}

func (s *LocalSigner) SignWithdrawal(p WithdrawalSignParams) (string, error) {
	sig, err := starkex.WithdrawSign(s.privateKey, starkex.WithdrawSignParam{
		NetworkId:   int(s.network),
		PositionId:  p.PositionID,
		HumanAmount: p.HumanAmount,
		ClientId:    p.ClientID,
		Expiration:  p.Expiration,
	})
	if err != nil {
		return "", fmt.Errorf("stark withdrawal sign: %w", err)
	}
	return sig, nil
}

func (s *LocalSigner) SignTransfer(p TransferSignParams) (string, error) {
	sig, err := starkex.TransferSign(s.privateKey, starkex.TransferSignParam{
		NetworkId:          int(s.network),
		SenderPositionId:   p.SenderPositionID,
		ReceiverPositionId: p.ReceiverPositionID,
		ReceiverPublicKey:  p.ReceiverPublicKey,
		ReceiverAddress:    p.ReceiverAddress,
		CreditAmount:       p.CreditAmount,
		DebitAmount:        p.DebitAmount,
		ClientId:           p.ClientID,
		Expiration:         p.Expiration,
	})
	if err != nil {
		return "", fmt.Errorf("stark transfer sign: %w", err)
	}
	return sig, nil
}

func (s *LocalSigner) SignConditionalTransfer(p ConditionalTransferSignParams) (string, error) {
	sig, err := starkex.ConditionTransferSign(s.privateKey, starkex.ConditionTransferSignParam{
		NetworkId:           int(s.network),
		SenderPositionId:    p.SenderPositionID,
		ReceiverPositionId:  p.ReceiverPositionID,
		ReceiverPublicKey:   p.ReceiverPublicKey,
		FactRegistryAddress: p.FactRegistryAddress,
		Fact:                p.Fact,
		CreditAmount:        p.CreditAmount,
		DebitAmount:         p.DebitAmount,
		ClientId:            p.ClientID,
		Expiration:          p.Expiration,
	})
	if err != nil {
		return "", fmt.Errorf("stark conditional transfer sign: %w", err)
	}
	return sig, nil
}
