package domain

const (
	TxTypeReferral = "referral"
	TxTypeWithdraw = "withdraw"
)

const WithdrawalStatusPending = "pending"

// DefaultWithdrawMethod is applied when a withdrawal request omits the payout method.
const DefaultWithdrawMethod = "UPI"
