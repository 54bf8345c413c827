package dto_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/story-editor/internal/domain"
)

func cmpIgnoreErrors() cmp.Option {
	return cmpopts.IgnoreFields(dto.ErrorResponse{}, "Errors")
}

// requireValidationField asserts err is a *domain.ValidationError holding
// the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}
