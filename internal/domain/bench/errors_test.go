package bench

import (
	"errors"
	"testing"
)

func TestSetupFailureWraps(t *testing.T) {
	base := errors.New("spawn failed")
	err := SetupFailure(base)

	if !errors.Is(err, ErrSetup) {
		t.Error("SetupFailure result does not match ErrSetup")
	}
	if !errors.Is(err, base) {
		t.Error("SetupFailure result does not preserve the wrapped error")
	}
	if errors.Is(err, ErrOutput) {
		t.Error("SetupFailure result must not match ErrOutput")
	}
}

func TestOutputFailureWraps(t *testing.T) {
	base := errors.New("disk full")
	err := OutputFailure(base)

	if !errors.Is(err, ErrOutput) {
		t.Error("OutputFailure result does not match ErrOutput")
	}
	if !errors.Is(err, base) {
		t.Error("OutputFailure result does not preserve the wrapped error")
	}
}
