package types

// WithdrawalParams carries the caller-supplied fields for a (slow) withdrawal.
type WithdrawalParams struct {
	Amount     string // human-readable
	Asset      string // e.g. "USDC"
	Expiration string // ISO-8601

	ClientID  string
	Signature string
}

// Withdrawal is the finalized wire payload for POST /v3/withdrawals.
type Withdrawal struct {
	Amount     string `json:"amount"`
	Asset      string `json:"asset"`
	Expiration string `json:"expiration"`
	ClientID   string `json:"clientId"`
	Signature  string `json:"signature"`
}

// FastWithdrawalParams carries the caller-supplied fields for a fast
// withdrawal routed through a liquidity provider. LPStarkKey is the
// counterparty public key the conditional transfer is signed against and is
// required for local signing.
type FastWithdrawalParams struct {
	CreditAsset  string // asset credited on L1, e.g. "USDC"
	CreditAmount string // human-readable amount received on L1
	DebitAmount  string // human-readable amount debited from L2
	ToAddress    string // L1 recipient
	LPPositionID int64
	LPStarkKey   string
	Expiration   string // ISO-8601

	ClientID  string
	Signature string
}

// FastWithdrawal is the finalized wire payload for POST /v3/fast-withdrawals.
type FastWithdrawal struct {
	CreditAsset  string `json:"creditAsset"`
	CreditAmount string `json:"creditAmount"`
	DebitAmount  string `json:"debitAmount"`
	ToAddress    string `json:"toAddress"`
	LPPositionID string `json:"lpPositionId"`
	Expiration   string `json:"expiration"`
	ClientID     string `json:"clientId"`
	Signature    string `json:"signature"`
}

// TransferParams carries the caller-supplied fields for an L2 transfer to
// another account on the same venue.
type TransferParams struct {
	Amount             string // human-readable
	ReceiverAccountID  string
	ReceiverPositionID int64
	ReceiverPublicKey  string
	ReceiverAddress    string
	Expiration         string // ISO-8601

	ClientID  string
	Signature string
}

// Transfer is the finalized wire payload for POST /v3/transfers.
type Transfer struct {
	Amount            string `json:"amount"`
	ReceiverAccountID string `json:"receiverAccountId"`
	Expiration        string `json:"expiration"`
	ClientID          string `json:"clientId"`
	Signature         string `json:"signature"`
}

// TransferRecord is the server-side record of a transfer or withdrawal.
type TransferRecord struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	DebitAsset      string `json:"debitAsset"`
	CreditAsset     string `json:"creditAsset"`
	DebitAmount     string `json:"debitAmount"`
	CreditAmount    string `json:"creditAmount"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status"`
	ClientID        string `json:"clientId"`
	FromAddress     string `json:"fromAddress,omitempty"`
	ToAddress       string `json:"toAddress,omitempty"`
	CreatedAt       string `json:"createdAt"`
	ConfirmedAt     string `json:"confirmedAt,omitempty"`
}

// TransferResponse wraps a single transfer record.
type TransferResponse struct {
	Transfer TransferRecord `json:"transfer"`
}

// WithdrawalResponse wraps a single withdrawal record.
type WithdrawalResponse struct {
	Withdrawal TransferRecord `json:"withdrawal"`
}

// TransfersResponse is the list form returned by GET /v3/transfers.
type TransfersResponse struct {
	Transfers []TransferRecord `json:"transfers"`
}
