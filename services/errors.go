package services

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrStartNumberTaken  = errors.New("this invoice number is already assigned to another user")

	ErrCannotDeleteSelf      = errors.New("you cannot delete yourself while logged in")
	ErrCannotDeleteLastAdmin = errors.New("cannot delete the last admin")

	ErrNoMatchingInvoices      = errors.New("selected invoices not found")
	ErrDuplicateInvoiceInBatch = errors.New("one or more selected invoices are already included in a previous load sheet")
	ErrLoadSheetNotFound       = errors.New("load sheet not found")
	ErrUnknownFormat           = errors.New("unknown format")
)
