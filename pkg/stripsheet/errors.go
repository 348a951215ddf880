package stripsheet

import (
	"errors"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/codec"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither xlsx nor xls.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrInputEmpty indicates the source sheet has no rows.
var ErrInputEmpty = errors.New("source sheet is empty")

// ErrInvalidHeaderRange indicates the header block is not a contiguous range inside the sheet.
var ErrInvalidHeaderRange = errors.New("invalid header range")

// CodecError is a failure of the spreadsheet codec. It is returned as is, never retried.
type CodecError = codec.Error
