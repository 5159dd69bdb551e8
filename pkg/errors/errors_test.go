package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownLayout, "no such layout: %s", "workman")

	if err.Code != ErrCodeUnknownLayout {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeUnknownLayout)
	}
	if err.Message != "no such layout: workman" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "UNKNOWN_LAYOUT: no such layout: workman"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeIOFailure, cause, "write %s", "out/keyboard_qwerty.bin")

	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "IO_FAILURE: write out/keyboard_qwerty.bin: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeTruncatedFile, "short read")

	if !Is(err, ErrCodeTruncatedFile) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeMalformedFile) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeTruncatedFile) {
		t.Error("Is should not match non-structured errors")
	}

	// Matching through wrapping layers.
	wrapped := fmt.Errorf("decode: %w", err)
	if !Is(wrapped, ErrCodeTruncatedFile) {
		t.Error("Is should unwrap standard wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMalformedFile, "bad magic")); got != ErrCodeMalformedFile {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeMalformedFile)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidLayout, "duplicate key 'q'")
	if got := UserMessage(err); got != "duplicate key 'q'" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
