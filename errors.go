package mdnotion

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrInvalidSyntax indicates a block construct did not match its pattern.
	// Tokenizers recover from it internally; it never escapes Tokenize.
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrValidation indicates a token, configuration or payload failed validation.
	ErrValidation = errors.New("validation error")

	// ErrInvalidUTF8 indicates input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")

	// ErrBinaryInput indicates input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)
