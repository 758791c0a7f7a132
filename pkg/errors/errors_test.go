package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeLLMProviderError, http.StatusInternalServerError},
		{CodeInternalError, http.StatusInternalServerError},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{CodeConfigMissing, http.StatusInternalServerError},
		{CodeNotFound, http.StatusNotFound},
		{CodeGenerationFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := New(tc.code, "x").HTTPStatus; got != tc.want {
			t.Errorf("code %s: got status %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestKind(t *testing.T) {
	if k := ErrInvalidParam.Kind(); k != KindValidation {
		t.Errorf("invalid param kind = %s", k)
	}
	if k := ErrProvider.Kind(); k != KindProvider {
		t.Errorf("provider kind = %s", k)
	}
	if k := ErrConfigMissing.Kind(); k != KindConfiguration {
		t.Errorf("config kind = %s", k)
	}
	if k := ErrGenerationFailed.Kind(); k != KindInternal {
		t.Errorf("generation kind = %s", k)
	}
}

func TestWithErrorDoesNotMutatePredefined(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	e := ErrProvider.WithError(cause)

	if ErrProvider.Err != nil {
		t.Fatal("predefined error was mutated")
	}
	if !stderrors.Is(e, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !stderrors.Is(e, ErrProvider) {
		t.Error("code comparison via errors.Is failed")
	}
	if e.Cause() != "quota exceeded" {
		t.Errorf("Cause() = %q", e.Cause())
	}
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := New(CodeInvalidParam, "headline must not be empty")
	wrapped := fmt.Errorf("handler: %w", inner)

	if !IsAppError(wrapped) {
		t.Fatal("IsAppError should see through fmt wrapping")
	}
	if got := AsAppError(wrapped); got != inner {
		t.Errorf("AsAppError returned %v, want original", got)
	}
	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind should report validation")
	}

	plain := AsAppError(stderrors.New("boom"))
	if plain.Code != CodeUnknown || plain.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("unexpected conversion of plain error: %+v", plain)
	}
}
