package validate_test

import (
	"testing"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/validate"
)

type inventoryInput struct {
	ProductID    *int    `json:"product_id"    validate:"required,gte=0"`
	Condition    *string `json:"condition"     validate:"required,in=NEW,OPEN_BOX,USED"`
	RestockLevel *string `json:"restock_level" validate:"required,in=EMPTY,LOW,MODERATE,PLENTY"`
	Quantity     *int    `json:"quantity"      validate:"required,gte=0"`
}

func ptr[T any](v T) *T { return &v }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(inventoryInput{
		ProductID:    ptr(5),
		Condition:    ptr("OPEN_BOX"),
		RestockLevel: ptr("LOW"),
		Quantity:     ptr(0),
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFailsOnNilPointers(t *testing.T) {
	errs := validate.Struct(inventoryInput{})
	for _, f := range []string{"product_id", "condition", "restock_level", "quantity"} {
		if _, ok := errs[f]; !ok {
			t.Errorf("expected %s to be required", f)
		}
	}
	if got := errs["quantity"]; got != "The quantity field is required." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestRequiredAllowsZero(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected zero quantity to pass, got: %v", errs)
	}
}

func TestRequiredRejectsBlankString(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}
	if errs := validate.Struct(in{Name: "  "}); !validate.HasErrors(errs) {
		t.Error("expected blank string to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	errs := validate.Struct(inventoryInput{
		ProductID:    ptr(1),
		Condition:    ptr("NEW"),
		RestockLevel: ptr("EMPTY"),
		Quantity:     ptr(-1),
	})
	if got := errs["quantity"]; got != "The quantity must be greater than or equal to 0." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestInRuleNamesValue(t *testing.T) {
	errs := validate.Struct(inventoryInput{
		ProductID:    ptr(1),
		Condition:    ptr("BROKEN"),
		RestockLevel: ptr("LOW"),
		Quantity:     ptr(1),
	})
	if got := errs["condition"]; got != "The selected condition 'BROKEN' is invalid." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestInRuleFollowedByOtherRule(t *testing.T) {
	type in struct {
		Code string `json:"code" validate:"in=aa,bbb,cccc,max=3"`
	}
	if errs := validate.Struct(in{Code: "bbb"}); validate.HasErrors(errs) {
		t.Errorf("expected bbb to pass: %v", errs)
	}
	if errs := validate.Struct(in{Code: "cccc"}); !validate.HasErrors(errs) {
		t.Error("expected cccc to fail max=3")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Note string `json:"note" validate:"nullable,min=3"`
	}
	if errs := validate.Struct(in{Note: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Note: "ab"}); !validate.HasErrors(errs) {
		t.Error("expected short note to fail")
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Score float64 `json:"score" validate:"between=0,100"`
	}
	if errs := validate.Struct(in{Score: 150}); !validate.HasErrors(errs) {
		t.Error("expected score > 100 to fail")
	}
	if errs := validate.Struct(in{Score: 75}); validate.HasErrors(errs) {
		t.Errorf("expected score 75 to pass: %v", errs)
	}
}

func TestOptionalPointerSkippedWhenNil(t *testing.T) {
	type in struct {
		Quantity *int `json:"quantity" validate:"gte=0"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected nil optional pointer to pass: %v", errs)
	}
}
