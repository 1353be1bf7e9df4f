package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/fibgate/internal/shared/utils"
)

// ErrMalformedJSON is returned when a request body cannot be parsed at all.
var ErrMalformedJSON = errors.New("invalid JSON format in request body")

const (
	paymentIDField   = "paymentId"
	nullFieldMessage = "Expected string, received null"
)

// optionalCreateFields are the create-payment keys that may be absent but never null.
var optionalCreateFields = []string{
	"description",
	"statusCallbackUrl",
	"redirectUri",
	"expiresIn",
	"refundableFor",
	"category",
}

var validate = newPaymentValidator()

// validationMessages overrides the generic validator text per "field.tag".
var validationMessages = map[string]string{
	"monetaryValue.required":          "Monetary value is required",
	"monetaryValue.amount.required":   "Amount cannot be empty",
	"monetaryValue.amount.fib_amount": `Amount must be a whole number string or end in .00 (e.g., "500", "123.00"). Fractional values (e.g., "500.50") are not allowed.`,
	"monetaryValue.currency.len":      "Currency must be a 3-letter code (e.g., IQD)",
	"statusCallbackUrl.url":           "Invalid Status Callback URL format",
	"redirectUri.url":                 "Invalid Redirect URI format",
	"expiresIn.iso8601_duration":      "Must be a valid ISO 8601 duration string (e.g., P1D, PT1H30M)",
	"refundableFor.iso8601_duration":  "Must be a valid ISO 8601 duration string (e.g., P1D, PT1H30M)",
	"category.fib_category":           "Category must be one of " + categoryList(),
	"id.required":                     "Invalid paymentId format (must be a UUID)",
	"id.fib_uuid":                     "Invalid paymentId format (must be a UUID)",
	"status.required":                 "Status is required",
	"status.fib_payment_status":       "Status must be one of PAID, UNPAID, DECLINED",
}

func newPaymentValidator() *validator.Validate {
	v := utils.NewValidator()

	mustRegister(v, "fib_amount", func(fl validator.FieldLevel) bool {
		return vo.IsValidAmount(fl.Field().String())
	})
	mustRegister(v, "iso8601_duration", func(fl validator.FieldLevel) bool {
		return vo.IsValidISODuration(fl.Field().String())
	})
	mustRegister(v, "fib_category", func(fl validator.FieldLevel) bool {
		return vo.PaymentCategory(fl.Field().String()).IsValid()
	})
	mustRegister(v, "fib_payment_status", func(fl validator.FieldLevel) bool {
		return vo.PaymentStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "fib_uuid", func(fl validator.FieldLevel) bool {
		return isUUID(v, fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// isUUID accepts the canonical 8-4-4-4-12 hex form in either case.
func isUUID(v *validator.Validate, s string) bool {
	return v.Var(strings.ToLower(s), "required,uuid") == nil
}

// ValidatePaymentID checks that raw is a UUID and returns it unchanged.
func ValidatePaymentID(raw string) (string, utils.FieldErrors) {
	if !isUUID(validate, raw) {
		return "", utils.FieldErrors{paymentIDField: {validationMessages["id.fib_uuid"]}}
	}
	return raw, nil
}

// DecodeCreatePayment parses and validates a create-payment body. It returns
// ErrMalformedJSON when the body is not JSON, or field errors when it does not validate.
// Optional fields may be omitted but not sent as null.
func DecodeCreatePayment(body []byte) (*CreatePaymentRequest, utils.FieldErrors, error) {
	var req CreatePaymentRequest
	if err := decodeJSON(body, &req); err != nil {
		if fieldErrors := utils.DecodeTypeErrors(err); fieldErrors != nil {
			return nil, fieldErrors, nil
		}
		return nil, nil, ErrMalformedJSON
	}

	fieldErrors := ValidateCreatePayment(&req)
	for _, field := range nullFields(body, optionalCreateFields) {
		if fieldErrors == nil {
			fieldErrors = utils.FieldErrors{}
		}
		fieldErrors.Add(field, nullFieldMessage)
	}
	if fieldErrors != nil {
		return nil, fieldErrors, nil
	}
	return &req, nil, nil
}

// ValidateCreatePayment validates an already decoded request.
func ValidateCreatePayment(req *CreatePaymentRequest) utils.FieldErrors {
	if err := validate.Struct(req); err != nil {
		return utils.CollectFieldErrors(err, validationMessages)
	}
	return nil
}

// DecodeStatusCallback parses and validates a gateway status notification.
func DecodeStatusCallback(body []byte) (*PaymentStatusCallback, utils.FieldErrors, error) {
	var cb PaymentStatusCallback
	if err := decodeJSON(body, &cb); err != nil {
		if fieldErrors := utils.DecodeTypeErrors(err); fieldErrors != nil {
			return nil, fieldErrors, nil
		}
		return nil, nil, ErrMalformedJSON
	}

	if err := validate.Struct(&cb); err != nil {
		return nil, utils.CollectFieldErrors(err, validationMessages), nil
	}
	return &cb, nil, nil
}

// decodeJSON rejects anything that is not exactly one JSON value before decoding it.
func decodeJSON(body []byte, target any) error {
	if !json.Valid(body) {
		return ErrMalformedJSON
	}
	return json.Unmarshal(body, target)
}

// nullFields returns the listed top-level keys whose value is an explicit null.
func nullFields(body []byte, fields []string) []string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	var found []string
	for _, field := range fields {
		if value, ok := raw[field]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			found = append(found, field)
		}
	}
	return found
}

func categoryList() string {
	names := make([]string, 0, len(vo.Categories()))
	for _, c := range vo.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
