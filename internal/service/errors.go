package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrAuthNotConfigured       = errors.New("token verification key is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrCorruptRecord is returned when a stored record decrypts but does
	// not have the expected shape.
	ErrCorruptRecord = errors.New("stored record has unexpected shape")

	ErrAssistantUnavailable = errors.New("ai assistant is not configured")
	ErrVoiceUnavailable     = errors.New("voice commands are not configured")
	ErrUnrecognizedCommand  = errors.New("voice command not recognized")

	ErrUnknownCurrency = errors.New("unknown currency")
)

// Validation errors. All of them wrap [ErrInvalidDataProvided].
var (
	ErrValidationNoUserID       = validationError("no user ID was given")
	ErrValidationNoStockName    = validationError("stock name is required")
	ErrValidationNoTicker       = validationError("ticker symbol is required")
	ErrValidationNegativeShares = validationError("number of shares must not be negative")
	ErrValidationNegativePrice  = validationError("purchase price must not be negative")
	ErrValidationNoPurchaseDate = validationError("purchase date is required")
	ErrValidationNoStockID      = validationError("no stock ID was given")
	ErrValidationNoPrompt       = validationError("prompt is required")
	ErrValidationNoMessage      = validationError("user message and bot response are required")
	ErrValidationNoClerkID      = validationError("clerk ID is required")
	ErrValidationNoEmail        = validationError("email is required")
	ErrValidationBadEnum        = validationError("value is not allowed")
	ErrValidationNoText         = validationError("text is required")
)

type invalidDataError struct {
	msg string
}

func validationError(msg string) error {
	return &invalidDataError{msg: msg}
}

func (e *invalidDataError) Error() string {
	return e.msg
}

func (e *invalidDataError) Unwrap() error {
	return ErrInvalidDataProvided
}
