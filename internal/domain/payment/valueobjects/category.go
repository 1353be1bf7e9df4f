package valueobjects

type PaymentCategory string

const (
	CategoryERP           PaymentCategory = "ERP"
	CategoryPOS           PaymentCategory = "POS"
	CategoryECommerce     PaymentCategory = "ECOMMERCE"
	CategoryUtility       PaymentCategory = "UTILITY"
	CategoryPayroll       PaymentCategory = "PAYROLL"
	CategorySupplier      PaymentCategory = "SUPPLIER"
	CategoryLoan          PaymentCategory = "LOAN"
	CategoryGovernment    PaymentCategory = "GOVERNMENT"
	CategoryMiscellaneous PaymentCategory = "MISCELLANEOUS"
	CategoryOther         PaymentCategory = "OTHER"
)

var categories = []PaymentCategory{
	CategoryERP,
	CategoryPOS,
	CategoryECommerce,
	CategoryUtility,
	CategoryPayroll,
	CategorySupplier,
	CategoryLoan,
	CategoryGovernment,
	CategoryMiscellaneous,
	CategoryOther,
}

// Categories returns every category the gateway accepts, in declaration order.
func Categories() []PaymentCategory {
	out := make([]PaymentCategory, len(categories))
	copy(out, categories)
	return out
}

func (c PaymentCategory) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c PaymentCategory) String() string {
	return string(c)
}
