package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/starkbot/gostark/stark/signing"
	"github.com/starkbot/gostark/stark/types"
)

// signWithdrawal finalizes a slow withdrawal payload.
func (c *Client) signWithdrawal(params types.WithdrawalParams) (*types.Withdrawal, error) {
	clientID := resolveClientID(params.ClientID)

	signature := params.Signature
	if signature == "" {
		if err := c.CanSign(); err != nil {
			return nil, err
		}
		sig, err := c.signer.SignWithdrawal(signing.WithdrawalSignParams{
			PositionID:  c.positionID,
			HumanAmount: params.Amount,
			ClientID:    clientID,
			Expiration:  params.Expiration,
		})
		if err != nil {
			return nil, &SignerError{Action: "withdrawal", Err: err}
		}
		signature = sig
	}

	return &types.Withdrawal{
		Amount:     params.Amount,
		Asset:      params.Asset,
		Expiration: params.Expiration,
		ClientID:   clientID,
		Signature:  signature,
	}, nil
}

// signFastWithdrawal finalizes a fast withdrawal. The conditional transfer
// is signed against a fact binding recipient, token, amount and a salt
// derived from the client id, so a retry with the same client id recomputes
// the identical fact and signature inputs.
func (c *Client) signFastWithdrawal(params types.FastWithdrawalParams) (*types.FastWithdrawal, error) {
	clientID := resolveClientID(params.ClientID)

	signature := params.Signature
	if signature == "" {
		if params.LPStarkKey == "" {
			return nil, ErrMissingLPKey
		}
		if err := c.CanSign(); err != nil {
			return nil, err
		}

		salt := signing.NonceFromClientID(clientID)
		fact, err := signing.TransferERC20Fact(
			params.ToAddress,
			c.netConfig.CollateralToken,
			c.netConfig.CollateralDecimals,
			params.CreditAmount,
			salt,
		)
		if err != nil {
			return nil, fmt.Errorf("derive transfer fact: %w", err)
		}

		sig, err := c.signer.SignConditionalTransfer(signing.ConditionalTransferSignParams{
			SenderPositionID:    c.positionID,
			ReceiverPositionID:  params.LPPositionID,
			ReceiverPublicKey:   params.LPStarkKey,
			FactRegistryAddress: c.netConfig.FactRegistry,
			Fact:                fact,
			CreditAmount:        params.CreditAmount,
			DebitAmount:         params.DebitAmount,
			ClientID:            clientID,
			Expiration:          params.Expiration,
		})
		if err != nil {
			return nil, &SignerError{Action: "fast withdrawal", Err: err}
		}
		signature = sig
	}

	return &types.FastWithdrawal{
		CreditAsset:  params.CreditAsset,
		CreditAmount: params.CreditAmount,
		DebitAmount:  params.DebitAmount,
		ToAddress:    params.ToAddress,
		LPPositionID: strconv.FormatInt(params.LPPositionID, 10),
		Expiration:   params.Expiration,
		ClientID:     clientID,
		Signature:    signature,
	}, nil
}

// signTransfer finalizes an L2 transfer payload.
func (c *Client) signTransfer(params types.TransferParams) (*types.Transfer, error) {
	clientID := resolveClientID(params.ClientID)

	signature := params.Signature
	if signature == "" {
		if err := c.CanSign(); err != nil {
			return nil, err
		}
		sig, err := c.signer.SignTransfer(signing.TransferSignParams{
			SenderPositionID:   c.positionID,
			ReceiverPositionID: params.ReceiverPositionID,
			ReceiverPublicKey:  params.ReceiverPublicKey,
			ReceiverAddress:    params.ReceiverAddress,
			CreditAmount:       params.Amount,
			DebitAmount:        params.Amount,
			ClientID:           clientID,
			Expiration:         params.Expiration,
		})
		if err != nil {
			return nil, &SignerError{Action: "transfer", Err: err}
		}
		signature = sig
	}

	return &types.Transfer{
		Amount:            params.Amount,
		ReceiverAccountID: params.ReceiverAccountID,
		Expiration:        params.Expiration,
		ClientID:          clientID,
		Signature:         signature,
	}, nil
}

// CreateWithdrawal finalizes and submits a slow withdrawal.
func (c *Client) CreateWithdrawal(ctx context.Context, params types.WithdrawalParams) (*types.WithdrawalResponse, error) {
	withdrawal, err := c.signWithdrawal(params)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, "transfers:post"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.WithdrawalResponse
	if err := c.private(ctx, types.MethodPost, EndpointWithdrawals, nil, withdrawal, &out); err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"amount":   withdrawal.Amount,
		"clientId": withdrawal.ClientID,
	}).Info("withdrawal submitted")
	return &out, nil
}

// CreateFastWithdrawal finalizes and submits a fast withdrawal routed
// through a liquidity provider.
func (c *Client) CreateFastWithdrawal(ctx context.Context, params types.FastWithdrawalParams) (*types.WithdrawalResponse, error) {
	fw, err := c.signFastWithdrawal(params)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, "transfers:post"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.WithdrawalResponse
	if err := c.private(ctx, types.MethodPost, EndpointFastWithdrawals, nil, fw, &out); err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"debitAmount": fw.DebitAmount,
		"clientId":    fw.ClientID,
	}).Info("fast withdrawal submitted")
	return &out, nil
}

// CreateTransfer finalizes and submits an L2 transfer.
func (c *Client) CreateTransfer(ctx context.Context, params types.TransferParams) (*types.TransferResponse, error) {
	transfer, err := c.signTransfer(params)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, "transfers:post"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.TransferResponse
	if err := c.private(ctx, types.MethodPost, EndpointTransfers, nil, transfer, &out); err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"amount":   transfer.Amount,
		"clientId": transfer.ClientID,
	}).Info("transfer submitted")
	return &out, nil
}

// GetTransfers lists the account's transfer records.
func (c *Client) GetTransfers(ctx context.Context, transferType string, limit int) (*types.TransfersResponse, error) {
	if err := c.limiter.Wait(ctx, "transfers:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	params := url.Values{}
	if transferType != "" {
		params.Set("transferType", transferType)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var out types.TransfersResponse
	if err := c.private(ctx, types.MethodGet, EndpointTransfers, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
