package outcome

import "net/http"

// Operation identifies one of the four gateway calls the proxy performs.
type Operation string

const (
	OperationCreate      Operation = "create"
	OperationCancel      Operation = "cancel"
	OperationRefund      Operation = "refund"
	OperationCheckStatus Operation = "checkStatus"
)

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationCancel, OperationRefund, OperationCheckStatus:
		return true
	default:
		return false
	}
}

// LogName is the operation label used in log lines and metrics.
func (o Operation) LogName() string {
	switch o {
	case OperationCreate:
		return "Create Payment API"
	case OperationCancel:
		return "Cancel Payment API"
	case OperationRefund:
		return "Refund Payment API"
	case OperationCheckStatus:
		return "Check Status API"
	default:
		return string(o)
	}
}

// successStatus is the only upstream status that means the operation succeeded.
// Check-status is the exception: any 2xx without embedded errors succeeds.
func (o Operation) successStatus() int {
	switch o {
	case OperationCreate:
		return http.StatusCreated
	case OperationCancel:
		return http.StatusNoContent
	case OperationRefund:
		return http.StatusAccepted
	default:
		return 0
	}
}

func (o Operation) String() string {
	return string(o)
}
