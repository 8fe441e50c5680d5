package signing

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// TransferERC20Fact derives the condition hash a fast-withdrawal conditional
// transfer is signed against. It is the keccak256 of the solidity-packed
// tuple (address recipient, uint256 tokenAmount, address token, uint256
// salt), where tokenAmount is the human amount shifted into token quantums.
//
// The salt must be the nonce derived from the action's client id, which ties
// the fact to the action identity: a retry with the same client id
// recomputes the identical fact.
func TransferERC20Fact(recipient, tokenAddress string, tokenDecimals int32, humanAmount string, salt uint32) (string, error) {
	if !common.IsHexAddress(recipient) {
		return "", fmt.Errorf("invalid recipient address: %q", recipient)
	}
	if !common.IsHexAddress(tokenAddress) {
		return "", fmt.Errorf("invalid token address: %q", tokenAddress)
	}

	amount, err := decimal.NewFromString(humanAmount)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", humanAmount, err)
	}
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("amount must be positive, got %q", humanAmount)
	}
	quantums := amount.Shift(tokenDecimals)
	if !quantums.IsInteger() {
		return "", fmt.Errorf("amount %q has more than %d decimal places", humanAmount, tokenDecimals)
	}

	packed := make([]byte, 0, 20+32+20+32)
	packed = append(packed, common.HexToAddress(recipient).Bytes()...)
	packed = append(packed, math.U256Bytes(quantums.BigInt())...)
	packed = append(packed, common.HexToAddress(tokenAddress).Bytes()...)
	packed = append(packed, math.U256Bytes(new(big.Int).SetUint64(uint64(salt)))...)

	return "0x" + common.Bytes2Hex(crypto.Keccak256(packed)), nil
}
