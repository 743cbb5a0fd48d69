package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Capability (WALLET) ----

func ErrWalletUnavailable() *AppError {
	return New("WALLET_001", "No wallet capability is available", http.StatusServiceUnavailable)
}

func ErrUserRejected() *AppError {
	return New("WALLET_002", "Request was rejected by the user", http.StatusBadRequest)
}

func ErrNetworkSwitchFailed(err error) *AppError {
	return Wrap("WALLET_003", "Could not switch to the payment network", http.StatusInternalServerError, err)
}

// ---- Payment Business Logic (PAY) ----

func ErrTransferRejected() *AppError {
	return New("PAY_001", "Transfer was rejected by the user", http.StatusBadRequest)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("PAY_002", "Transfer could not be completed", http.StatusBadGateway, err)
}

func ErrNoFundsAvailable() *AppError {
	return New("PAY_003", "No funds available to withdraw", http.StatusPaymentRequired)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotRefundable() *AppError {
	return New("PAY_005", "Transaction is not eligible for refund", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
