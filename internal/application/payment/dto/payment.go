package dto

import (
	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
)

// MonetaryValueRequest is the amount part of a create-payment request.
type MonetaryValueRequest struct {
	Amount   string `json:"amount" validate:"required,fib_amount"`
	Currency string `json:"currency" validate:"len=3"`
}

// CreatePaymentRequest is forwarded to the gateway as-is once it validates.
type CreatePaymentRequest struct {
	MonetaryValue     *MonetaryValueRequest `json:"monetaryValue" validate:"required"`
	Description       *string               `json:"description,omitempty"`
	StatusCallbackURL *string               `json:"statusCallbackUrl,omitempty" validate:"omitempty,url"`
	RedirectURI       *string               `json:"redirectUri,omitempty" validate:"omitempty,url"`
	ExpiresIn         *string               `json:"expiresIn,omitempty" validate:"omitempty,iso8601_duration"`
	RefundableFor     *string               `json:"refundableFor,omitempty" validate:"omitempty,iso8601_duration"`
	Category          *vo.PaymentCategory   `json:"category,omitempty" validate:"omitempty,fib_category"`
}

// PaymentResponse is the gateway representation of a created payment.
type PaymentResponse struct {
	PaymentID        string `json:"paymentId"`
	ReadableCode     string `json:"readableCode"`
	QRCode           string `json:"qrCode"`
	ValidUntil       string `json:"validUntil"`
	PersonalAppLink  string `json:"personalAppLink"`
	BusinessAppLink  string `json:"businessAppLink"`
	CorporateAppLink string `json:"corporateAppLink"`
}

type PayerInfo struct {
	Name string `json:"name"`
	IBAN string `json:"iban"`
}

// CheckPaymentStatusResponse is the gateway status view. Paid fields are set only for
// PAID, declining fields only for DECLINED.
type CheckPaymentStatusResponse struct {
	PaymentID       string             `json:"paymentId"`
	Status          vo.PaymentStatus   `json:"status"`
	PaidAt          string             `json:"paidAt,omitempty"`
	Amount          *vo.MonetaryValue  `json:"amount,omitempty"`
	PaidBy          *PayerInfo         `json:"paidBy,omitempty"`
	DecliningReason vo.DecliningReason `json:"decliningReason,omitempty"`
	DeclinedAt      string             `json:"declinedAt,omitempty"`
}

// PaymentStatusCallback is what the gateway posts to statusCallbackUrl.
type PaymentStatusCallback struct {
	ID     string           `json:"id" validate:"required,fib_uuid"`
	Status vo.PaymentStatus `json:"status" validate:"required,fib_payment_status"`
}
