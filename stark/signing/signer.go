package signing

// Signer is the asymmetric signing capability for trading actions. The
// network id is bound at construction so every signature is scoped to one
// StarkEx deployment. Implementations receive fully prepared parameters and
// return the signature string; they never mutate the inputs.
type Signer interface {
	SignOrder(p OrderSignParams) (string, error)
	SignWithdrawal(p WithdrawalSignParams) (string, error)
	SignTransfer(p TransferSignParams) (string, error)
	SignConditionalTransfer(p ConditionalTransferSignParams) (string, error)
}

// OrderSignParams is the prepared payload for signing an order. It carries
// only caller-specified and client-resolved fields; server-assigned fields
// never appear here.
type OrderSignParams struct {
	PositionID int64
	Market     string
	Side       string
	HumanSize  string
	HumanPrice string
	LimitFee   string
	ClientID   string
	Expiration string // ISO-8601
}

// WithdrawalSignParams is the prepared payload for signing a withdrawal.
type WithdrawalSignParams struct {
	PositionID  int64
	HumanAmount string
	ClientID    string
	Expiration  string // ISO-8601
}

// TransferSignParams is the prepared payload for signing an L2 transfer.
type TransferSignParams struct {
	SenderPositionID   int64
	ReceiverPositionID int64
	ReceiverPublicKey  string
	ReceiverAddress    string
	CreditAmount       string
	DebitAmount        string
	ClientID           string
	Expiration         string // ISO-8601
}

// ConditionalTransferSignParams is the prepared payload for signing the
// conditional transfer behind a fast withdrawal. Fact is the condition hash
// from TransferERC20Fact; FactRegistryAddress is the registry contract the
// condition is checked against.
type ConditionalTransferSignParams struct {
	SenderPositionID    int64
	ReceiverPositionID  int64
	ReceiverPublicKey   string
	FactRegistryAddress string
	Fact                string
	CreditAmount        string
	DebitAmount         string
	ClientID            string
	Expiration          string // ISO-8601
}
