package entity

import "github.com/shopspring/decimal"

// Expense gasto operativo de la empresa.
type Expense struct {
	ID            string          `json:"id"`
	ExpenseType   string          `json:"expense_type"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	ExpenseDate   string          `json:"expense_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	VendorPayee   string          `json:"vendor_payee,omitempty"`
	BankAccountID string          `json:"bank_account_id,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// ExpenseTypes tipos de gasto que acepta el backend.
var ExpenseTypes = []string{"operational", "salaries", "equipment", "utilities", "maintenance", "other"}

// PayoutMethods medios de pago de gastos y pagos a ISP.
var PayoutMethods = [][2]string{
	{"cash", "Cash"},
	{"bank_transfer", "Bank Transfer"},
	{"online", "Online Payment"},
}

// PayoutNeedsBankAccount los pagos por banco u online salen de una cuenta propia.
func PayoutNeedsBankAccount(method string) bool {
	return method == "bank_transfer" || method == "online"
}

// ISPPayment pago al proveedor mayorista de ancho de banda.
type ISPPayment struct {
	ID                 string          `json:"id"`
	ISPID              string          `json:"isp_id"`
	ISPName            string          `json:"isp_name,omitempty"`
	BankAccountID      string          `json:"bank_account_id,omitempty"`
	BankAccountDetails string          `json:"bank_account_details,omitempty"`
	PaymentType        string          `json:"payment_type"`
	ReferenceNumber    string          `json:"reference_number,omitempty"`
	Description        string          `json:"description,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        string          `json:"payment_date"`
	BillingPeriod      string          `json:"billing_period"`
	BandwidthUsageGB   decimal.Decimal `json:"bandwidth_usage_gb"`
	RatePerGB          decimal.Decimal `json:"rate_per_gb"`
	PaymentMethod      string          `json:"payment_method"`
	TransactionID      string          `json:"transaction_id,omitempty"`
	Status             string          `json:"status"`
	PaymentProof       string          `json:"payment_proof,omitempty"`
	ProcessorName      string          `json:"processor_name,omitempty"`
	IsActive           bool            `json:"is_active"`
}

// ISPPaymentTypes tipos de pago a ISP.
var ISPPaymentTypes = []string{"monthly_subscription", "bandwidth_usage", "infrastructure", "other"}

// HasProof el pago tiene comprobante descargable.
func (p ISPPayment) HasProof() bool { return p.PaymentProof != "" }

// Vendor proveedor de equipos y servicios.
type Vendor struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email,omitempty"`
	CNIC              string `json:"cnic"`
	Picture           string `json:"picture,omitempty"`
	CNICFrontImage    string `json:"cnic_front_image,omitempty"`
	CNICBackImage     string `json:"cnic_back_image,omitempty"`
	AgreementDocument string `json:"agreement_document,omitempty"`
	IsActive          bool   `json:"is_active"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// DocumentCount documentos adjuntos (CNIC y contrato).
func (v Vendor) DocumentCount() int {
	n := 0
	for _, d := range []string{v.CNICFrontImage, v.CNICBackImage, v.AgreementDocument} {
		if d != "" {
			n++
		}
	}
	return n
}

// SubZone subdivisión de un área de cobertura.
type SubZone struct {
	ID          string `json:"id"`
	AreaID      string `json:"area_id"`
	AreaName    string `json:"area_name,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// AuditLog registro de auditoría del backend. Solo lectura.
type AuditLog struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	Action    string `json:"action"`
	TableName string `json:"table_name"`
	RecordID  string `json:"record_id,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
