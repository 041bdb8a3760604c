package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketPrice  = errors.New("raffle has no valid ticket price")
	ErrEmptyImport         = errors.New("import contains no rows")
	ErrInvalidQuantity     = errors.New("quantity out of bounds")
	ErrInvalidPhone        = errors.New("unrecognized phone number")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidSpreadsheet  = errors.New("spreadsheet could not be read")
)
