package wallet

// Description message keys stored on ledger entries, resolved by clients.
const (
	descWithdrawInitiated = "activityLog.withdraw_initiated_by_user"
	descTopup             = "activityLog.topup_by_user"
)

// Default configuration values.
const (
	DefaultDocumentBucket = "wallet-documents"
	DefaultListLimit      = 10
)
