package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "paysystem/internal/platform/errors"

	"github.com/shopspring/decimal"
)

type customerIn struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Document *string `json:"document,omitempty" validate:"omitempty,document"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone"`
}

type chargeIn struct {
	Amount decimal.Decimal `json:"amount" validate:"decimal_gt0"`
}

type taxIDs struct {
	CPF  string `json:"cpf" validate:"cpf"`
	CNPJ string `json:"cnpj" validate:"cnpj"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func wantValidation(t *testing.T, err error, field, msg string) {
	t.Helper()
	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeValidation {
		t.Fatalf("want validation error, got %v", err)
	}
	if e.Field() != field {
		t.Fatalf("field = %q, want %q", e.Field(), field)
	}
	if msg != "" && e.Message() != msg {
		t.Fatalf("message = %q, want %q", e.Message(), msg)
	}
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[customerIn](post(`{"name":"Maria","email":"maria@example.com","document":"529.982.247-25","phone":"(11) 98765-4321"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Maria" || got.Document == nil || *got.Document != "529.982.247-25" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_DocumentMessages(t *testing.T) {
	cases := []struct {
		doc string
		msg string
	}{
		{"52998224726", "invalid CPF: the number does not match the check digit calculation"},
		{"11222333000182", "invalid CNPJ: the number does not match the check digit calculation"},
		{"123", "document must be a valid CPF (11 digits) or CNPJ (14 digits)"},
	}
	for _, c := range cases {
		body, _ := json.Marshal(map[string]string{"name": "Maria", "email": "maria@example.com", "document": c.doc})
		_, err := ParseJSON[customerIn](post(string(body)))
		wantValidation(t, err, "document", c.msg)
	}
}

func TestParseJSON_Phone(t *testing.T) {
	_, err := ParseJSON[customerIn](post(`{"name":"Maria","email":"maria@example.com","phone":"12345"}`))
	wantValidation(t, err, "phone", "phone must have 10 or 11 digits including area code")
}

func TestParseJSON_ShortMin(t *testing.T) {
	_, err := ParseJSON[customerIn](post(`{"name":"M","email":"maria@example.com"}`))
	wantValidation(t, err, "name", "name must be at least 2")
}

func TestParseJSON_DecimalGT0(t *testing.T) {
	if _, err := ParseJSON[chargeIn](post(`{"amount":"150.00"}`)); err != nil {
		t.Fatalf("positive amount rejected: %v", err)
	}
	if _, err := ParseJSON[chargeIn](post(`{"amount":12.5}`)); err != nil {
		t.Fatalf("numeric amount rejected: %v", err)
	}
	_, err := ParseJSON[chargeIn](post(`{"amount":"0"}`))
	wantValidation(t, err, "amount", "amount must be greater than zero")
	_, err = ParseJSON[chargeIn](post(`{"amount":-3}`))
	wantValidation(t, err, "amount", "")
}

func TestValidate_CPFAndCNPJTags(t *testing.T) {
	if err := Validate(taxIDs{CPF: "111.444.777-35", CNPJ: "04.252.011/0001-10"}); err != nil {
		t.Fatalf("valid ids rejected: %v", err)
	}
	wantValidation(t, Validate(taxIDs{CPF: "111.111.111-11", CNPJ: "04.252.011/0001-10"}), "cpf", "cpf must be a valid CPF")
	wantValidation(t, Validate(taxIDs{CPF: "111.444.777-35", CNPJ: "11111111111111"}), "cnpj", "cnpj must be a valid CNPJ")
}

func TestParseJSON_BodyErrors(t *testing.T) {
	cases := map[string]*http.Request{
		"empty":    httptest.NewRequest(http.MethodPost, "/", http.NoBody),
		"broken":   post(`{`),
		"unknown":  post(`{"name":"Maria","email":"maria@example.com","role":"x"}`),
		"trailing": post(`{"name":"Maria","email":"maria@example.com"} {}`),
	}
	for name, req := range cases {
		if _, err := ParseJSON[customerIn](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
			t.Fatalf("%s: want JSON error, got %v", name, err)
		}
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}
	got, err := ParseJSON[note](httptest.NewRequest(http.MethodPost, "/", http.NoBody), JSONOptions{AllowEmptyBody: true})
	if err != nil || got != (note{}) {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	_, err := ParseJSON[customerIn](post(`{"name":"Maria","email":"maria@example.com"}`), JSONOptions{MaxBytes: 8, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want JSON error for truncated body, got %v", err)
	}
}

func TestValidate_NonStruct(t *testing.T) {
	err := Validate(42)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("want validation error for non struct, got %v", err)
	}
}

func TestFieldAndMessage_Generic(t *testing.T) {
	f, m := FieldAndMessage(perr.Internalf("boom"))
	if f != "" || m != "boom" {
		t.Fatalf("got %q %q", f, m)
	}
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should be empty")
	}
}
