// Package barcode holds the types shared across every decoder and encoder
// in this module: the closed Format enumeration, the DecodedResult/Result
// type, decode/encode hints, and the closed error taxonomy that the
// row-scan driver and multi-format dispatcher use to decide whether a
// failure is worth retrying.
package barcode

import "errors"

// Stage is a closed tag identifying which part of the pipeline raised an
// error, attached to DecodeError/EncodeError for %w-chain introspection.
type Stage string

// Sentinel errors. Callers should compare with errors.Is, since every
// per-symbology decoder wraps these with stage-specific context.
var (
	// ErrNotFound means no candidate pattern or parser matched at all.
	// The row-scan driver and multi-format dispatcher treat this as
	// "try the next row/orientation/format"; it only surfaces once every
	// alternative has been exhausted.
	ErrNotFound = errors.New("barcode: not found")

	// ErrFormat means a pattern was found but its bits are structurally
	// invalid (bad escape sequence, non-even Data Matrix dimensions,
	// truncated codeword stream). Surfaces immediately; never retried.
	ErrFormat = errors.New("barcode: format error")

	// ErrChecksum means a pattern matched and decoded but a checksum
	// (UPC/EAN check digit, Code 93 double-check, Reed-Solomon recovery)
	// failed. Surfaces immediately; never retried.
	ErrChecksum = errors.New("barcode: checksum error")

	// ErrIllegalArgument means caller-supplied encode input violates the
	// symbology's contract (wrong length, non-numeric where numeric is
	// required, character outside the symbology's alphabet).
	ErrIllegalArgument = errors.New("barcode: illegal argument")
)

// DecodeError wraps a sentinel with the stage that produced it.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WrapDecodeError attaches a stage label to one of the sentinel errors above.
func WrapDecodeError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Stage: stage, Err: err}
}

// EncodeError wraps a sentinel with the stage (symbology writer) that
// produced it, mirroring DecodeError on the encode side.
type EncodeError struct {
	Stage Stage
	Err   error
}

func (e *EncodeError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

// WrapEncodeError attaches a stage label to one of the sentinel errors above.
func WrapEncodeError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &EncodeError{Stage: stage, Err: err}
}
