package errors

import (
	"strings"
	"testing"
)

func TestRecover(t *testing.T) {
	panicking := func() (err error) {
		defer Recover(&err, "panicking")
		panic("boom")
	}

	err := panicking()
	if err == nil {
		t.Fatal("Expected error from recovered panic")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("Expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "panicking" {
		t.Errorf("Operation = %v, want panicking", panicErr.Operation)
	}
	if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "no error",
			fn:      func() error { return nil },
			wantErr: false,
		},
		{
			name:    "returns error",
			fn:      func() error { return New("plain error") },
			wantErr: true,
		},
		{
			name:    "panics",
			fn:      func() error { panic("unexpected") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute(tt.name, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("SafeExecute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
