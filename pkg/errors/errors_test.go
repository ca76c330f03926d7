package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidLabel, "label too long: %q", "abc")
	want := `INVALID_LABEL: label too long: "abc"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStoreUnavailable, cause, "connect to %s", "mongodb://localhost")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if got := err.Error(); got != "STORE_UNAVAILABLE: connect to mongodb://localhost: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeBoneNotFound, "no bone with id %d", 7)

	if !Is(err, ErrCodeBoneNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for a plain error")
	}

	// Codes survive fmt wrapping.
	wrapped := fmt.Errorf("render: %w", err)
	if !Is(wrapped, ErrCodeBoneNotFound) {
		t.Error("Is() lost the code through fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidStyle, "bad style")); got != ErrCodeInvalidStyle {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidStyle)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format %q", "bmp")
	if got := UserMessage(err); got != `unknown format "bmp"` {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
