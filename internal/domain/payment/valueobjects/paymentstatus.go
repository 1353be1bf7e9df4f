package valueobjects

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusDeclined PaymentStatus = "DECLINED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusDeclined:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

// IsFinal reports whether the gateway will not move the payment to another status.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusDeclined
}

func (s PaymentStatus) String() string {
	return string(s)
}

type DecliningReason string

const (
	DecliningReasonServerFailure       DecliningReason = "SERVER_FAILURE"
	DecliningReasonPaymentExpiration   DecliningReason = "PAYMENT_EXPIRATION"
	DecliningReasonPaymentCancellation DecliningReason = "PAYMENT_CANCELLATION"
)
