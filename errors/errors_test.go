package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: New(PhaseDecode, KindTruncatedInstruction).
				Offset(24).
				Opcode(71).
				ID(9).
				Detail("word count %d exceeds remaining", 5).
				Build(),
			contains: []string{"[decode]", "truncated_instruction", "offset 24", "opcode 71", "%9", "word count 5"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseHeader,
				Kind:   KindInvalidMagic,
				Offset: NoOffset,
			},
			contains: []string{"[header]", "invalid_magic"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindNotFound,
				Offset: NoOffset,
				Detail: "read a.spv",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "not_found", "read a.spv", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoOffsetOmitted(t *testing.T) {
	err := New(PhaseResolve, KindMissingEntryPoint).Build()
	if strings.Contains(err.Error(), "offset") {
		t.Errorf("unexpected offset in %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseDecode, KindTruncatedInstruction, cause, "payload")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := New(PhaseDecode, KindInvalidUTF8).Offset(8).Build()

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidUTF8}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseHeader, Kind: KindInvalidUTF8}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, Sentinel(KindInvalidUTF8)) {
		t.Error("errors.Is should match a kind-only sentinel")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("errors.Is should not match foreign errors")
	}
}

func TestError_IsThroughCause(t *testing.T) {
	inner := Truncated(PhaseRead, 20, 4, 1)
	outer := New(PhaseDecode, KindTruncatedInstruction).Cause(inner).Build()

	if !errors.Is(outer, Sentinel(KindTruncated)) {
		t.Error("errors.Is should find wrapped truncated error")
	}
	if !errors.Is(outer, Sentinel(KindTruncatedInstruction)) {
		t.Error("errors.Is should match outer kind")
	}

	var target *Error
	if !errors.As(outer, &target) || target.Kind != KindTruncatedInstruction {
		t.Errorf("errors.As = %v", target)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseResolve, KindNoLocationDecoration).
		ID(12).
		Cause(cause).
		Detail("variable %%%d", 12).
		Build()

	if err.Phase != PhaseResolve {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseResolve)
	}
	if err.Kind != KindNoLocationDecoration {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNoLocationDecoration)
	}
	if !err.HasID || err.ID != 12 {
		t.Errorf("ID = %d (set %v), want 12", err.ID, err.HasID)
	}
	if err.HasOpcode {
		t.Error("HasOpcode should be false")
	}
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want %d", err.Offset, NoOffset)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "variable %12" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseRead, 16, 4, 3)
		if err.Kind != KindTruncated || err.Offset != 16 {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Detail, "need 4 bytes, 3 remaining") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := make([]byte, 64)
		err := InvalidUTF8(40, 5, data)
		if err.Kind != KindInvalidUTF8 || err.Opcode != 5 || !err.HasOpcode {
			t.Errorf("got %+v", err)
		}
		if len(err.Detail) > 100 {
			t.Errorf("Detail should be truncated: %d", len(err.Detail))
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "workers must be >= 1")
		if err.Kind != KindInvalidInput || err.Phase != PhaseConfig {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := &fs.PathError{Op: "open", Path: "a.spv", Err: fs.ErrNotExist}
		err := Load("a.spv", cause)
		if !errors.Is(err, cause) || !errors.Is(err, fs.ErrNotExist) {
			t.Error("Load should wrap cause")
		}
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %s, want %s", err.Kind, KindNotFound)
		}
	})

	t.Run("LoadPermission", func(t *testing.T) {
		cause := &fs.PathError{Op: "open", Path: "a.spv", Err: fs.ErrPermission}
		err := Load("a.spv", cause)
		if err.Kind != KindInvalidInput || !errors.Is(err, fs.ErrPermission) {
			t.Errorf("got %+v", err)
		}
	})
}
