package validation

import (
	"errors"
	"testing"

	"climate-api/internal/domain/model"
)

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_DateRange(t *testing.T) {
	tests := []struct {
		name      string
		dto       model.DateRangeDTO
		wantField string
	}{
		{name: "start only", dto: model.DateRangeDTO{Start: "2017-01-01"}},
		{name: "start and end", dto: model.DateRangeDTO{Start: "2016-08-24", End: "2017-08-23"}},
		{name: "missing start", dto: model.DateRangeDTO{}, wantField: "start"},
		{name: "malformed start", dto: model.DateRangeDTO{Start: "2017-13-01"}, wantField: "start"},
		{name: "free text start", dto: model.DateRangeDTO{Start: "yesterday"}, wantField: "start"},
		{name: "malformed end", dto: model.DateRangeDTO{Start: "2017-01-01", End: "01/02/2017"}, wantField: "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.dto)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(err.Errors()), err)
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			want := tt.wantField + " must be a date formatted as YYYY-MM-DD"
			if err.Error() != want {
				t.Errorf("message = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestEchoValidator_ReturnsRequestValidationError(t *testing.T) {
	err := NewEchoValidator().Validate(&model.DateRangeDTO{Start: "bad"})

	var validationErr *RequestValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Validate() = %T, want *RequestValidationError", err)
	}
}

func TestEchoValidator_NilOnSuccess(t *testing.T) {
	if err := NewEchoValidator().Validate(&model.DateRangeDTO{Start: "2017-01-01"}); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
