package errors

var (
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "errors.walletNotExist",
		Kind:    KindNotFound,
	}
	ErrPreapprovalNotFound = &DomainError{
		Code:    "PREAPPROVAL_NOT_FOUND",
		Message: "errors.walletPreapprovalDataNotExist",
		Kind:    KindNotFound,
	}
	ErrGatewayNotFound = &DomainError{
		Code:    "GATEWAY_NOT_FOUND",
		Message: "errors.walletGatewayIdNotExist",
		Kind:    KindNotFound,
	}
	ErrTransactionNotFound = &DomainError{
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "errors.walletTransactionIdNotExist",
		Kind:    KindNotFound,
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "errors.walletAmountLessWalletBalance",
		Kind:    KindInsufficientFunds,
	}
	ErrAlreadyApproved = &DomainError{
		Code:    "ALREADY_APPROVED",
		Message: "errors.walletTransactionAlreadyApproved",
		Kind:    KindInvalidState,
	}
	ErrAlreadyDeclined = &DomainError{
		Code:    "ALREADY_DECLINED",
		Message: "errors.walletTransactionAlreadyDecline",
		Kind:    KindInvalidState,
	}
	ErrGatewayNotOffline = &DomainError{
		Code:    "GATEWAY_NOT_OFFLINE",
		Message: "errors.walletTransactionNotOffline",
		Kind:    KindInvalidState,
	}
	ErrInvalidStatus = &DomainError{
		Code:    "INVALID_STATUS",
		Message: "errors.walletInvalidStatus",
		Kind:    KindValidation,
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "errors.walletInvalidAmount",
		Kind:    KindValidation,
	}
	ErrUploadOnlyPDF = &DomainError{
		Code:    "UPLOAD_ONLY_PDF",
		Message: "errors.uploadOnlyPDF",
		Kind:    KindValidation,
	}
	ErrDocumentUpload = &DomainError{
		Code:    "DOCUMENT_UPLOAD_FAILED",
		Message: "errors.walletDocumentUploadFailed",
		Kind:    KindUpstream,
	}
)
