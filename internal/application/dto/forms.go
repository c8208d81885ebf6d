package dto

import (
	"strconv"

	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// Form formulario de alta/edición. Payload devuelve el cuerpo que se envía al backend:
// un struct (JSON) o *repository.MultipartForm.
type Form interface {
	Payload() any
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerForm POST /customers/add|update (multipart por las imágenes de CNIC).
type CustomerForm struct {
	InternetID          string `form:"internet_id" validate:"required"`
	FirstName           string `form:"first_name" validate:"required"`
	LastName            string `form:"last_name" validate:"required"`
	Email               string `form:"email" validate:"omitempty,email"`
	Phone1              string `form:"phone_1" validate:"required"`
	Phone2              string `form:"phone_2"`
	CNIC                string `form:"cnic" validate:"required"`
	AreaID              string `form:"area_id" validate:"required"`
	ServicePlanID       string `form:"service_plan_id" validate:"required"`
	ISPID               string `form:"isp_id"`
	InstallationAddress string `form:"installation_address" validate:"required"`
	InstallationDate    string `form:"installation_date" validate:"required"`
	ConnectionType      string `form:"connection_type" validate:"required,oneof=internet tv_cable both"`
	InternetConnType    string `form:"internet_connection_type"`
	GPSCoordinates      string `form:"gps_coordinates"`
	DiscountAmount      string `form:"discount_amount" validate:"omitempty,numeric"`
	RechargeDate        string `form:"recharge_date"`

	Files []repository.File `form:"-"`
}

// Check internet y both necesitan el tipo de conexión de internet.
func (f *CustomerForm) Check() error {
	if f.ConnectionType != "tv_cable" && f.InternetConnType == "" {
		return domain.NewValidationError("internet_connection_type", "Internet Connection Type is required")
	}
	return nil
}

// Payload multipart con los campos y los documentos adjuntos.
func (f *CustomerForm) Payload() any {
	m := repository.NewMultipartForm().
		Set("internet_id", f.InternetID).
		Set("first_name", f.FirstName).
		Set("last_name", f.LastName).
		Set("email", f.Email).
		Set("phone_1", f.Phone1).
		Set("phone_2", f.Phone2).
		Set("cnic", f.CNIC).
		Set("area_id", f.AreaID).
		Set("service_plan_id", f.ServicePlanID).
		Set("isp_id", f.ISPID).
		Set("installation_address", f.InstallationAddress).
		Set("installation_date", f.InstallationDate).
		Set("connection_type", f.ConnectionType).
		Set("internet_connection_type", f.InternetConnType).
		Set("gps_coordinates", f.GPSCoordinates).
		Set("discount_amount", f.DiscountAmount).
		Set("recharge_date", f.RechargeDate)
	for i := range f.Files {
		m.Attach(&f.Files[i])
	}
	return m
}

// CustomerFormFrom precarga el formulario de edición.
func CustomerFormFrom(c *entity.Customer) *CustomerForm {
	return &CustomerForm{
		InternetID:          c.InternetID,
		FirstName:           c.FirstName,
		LastName:            c.LastName,
		Email:               c.Email,
		Phone1:              c.Phone1,
		Phone2:              c.Phone2,
		CNIC:                c.CNIC,
		AreaID:              c.AreaID,
		ServicePlanID:       c.ServicePlanID,
		ISPID:               c.ISPID,
		InstallationAddress: c.InstallationAddress,
		InstallationDate:    c.InstallationDate,
		ConnectionType:      c.ConnectionType,
		InternetConnType:    c.InternetConnType,
		GPSCoordinates:      c.GPSCoordinates,
		DiscountAmount:      c.DiscountAmount.String(),
		RechargeDate:        c.RechargeDate,
	}
}

// ── Quejas ────────────────────────────────────────────────────────────────────

// ComplaintForm POST /complaints/add|update (multipart por el adjunto).
type ComplaintForm struct {
	CustomerID  string `form:"customer_id" validate:"required"`
	Title       string `form:"title"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category"`
	Priority    string `form:"priority" validate:"omitempty,oneof=low medium high critical"`
	AssignedTo  string `form:"assigned_to"`

	Files []repository.File `form:"-"`
}

// Payload multipart.
func (f *ComplaintForm) Payload() any {
	m := repository.NewMultipartForm().
		Set("customer_id", f.CustomerID).
		Set("title", f.Title).
		Set("description", f.Description).
		Set("category", f.Category).
		Set("priority", f.Priority).
		Set("assigned_to", f.AssignedTo)
	for i := range f.Files {
		m.Attach(&f.Files[i])
	}
	return m
}

// ComplaintFormFrom precarga el formulario de edición.
func ComplaintFormFrom(c *entity.Complaint) *ComplaintForm {
	return &ComplaintForm{
		CustomerID:  c.CustomerID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Priority:    string(c.Priority),
		AssignedTo:  c.AssignedTo,
	}
}

// ── Facturas ──────────────────────────────────────────────────────────────────

// InvoiceForm POST /invoices/add|update. Los importes viajan como texto; el backend los valida.
type InvoiceForm struct {
	CustomerID         string `form:"customer_id" json:"customer_id" validate:"required"`
	BillingStartDate   string `form:"billing_start_date" json:"billing_start_date" validate:"required"`
	BillingEndDate     string `form:"billing_end_date" json:"billing_end_date" validate:"required"`
	DueDate            string `form:"due_date" json:"due_date" validate:"required"`
	Subtotal           string `form:"subtotal" json:"subtotal" validate:"required,numeric"`
	DiscountPercentage string `form:"discount_percentage" json:"discount_percentage" validate:"omitempty,numeric"`
	TotalAmount        string `form:"total_amount" json:"total_amount" validate:"required,numeric"`
	InvoiceType        string `form:"invoice_type" json:"invoice_type" validate:"required"`
	Notes              string `form:"notes" json:"notes"`
}

// Payload JSON.
func (f *InvoiceForm) Payload() any { return f }

// InvoiceFormFrom precarga el formulario de edición.
func InvoiceFormFrom(i *entity.Invoice) *InvoiceForm {
	return &InvoiceForm{
		CustomerID:         i.CustomerID,
		BillingStartDate:   i.BillingStartDate,
		BillingEndDate:     i.BillingEndDate,
		DueDate:            i.DueDate,
		Subtotal:           i.Subtotal.String(),
		DiscountPercentage: i.DiscountPercentage.String(),
		TotalAmount:        i.TotalAmount.String(),
		InvoiceType:        i.InvoiceType,
		Notes:              i.Notes,
	}
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// PaymentForm POST /payments/add|update (multipart por el comprobante).
type PaymentForm struct {
	InvoiceID     string `form:"invoice_id" validate:"required"`
	Amount        string `form:"amount" validate:"required,numeric"`
	PaymentDate   string `form:"payment_date" validate:"required"`
	PaymentMethod string `form:"payment_method" validate:"required"`
	TransactionID string `form:"transaction_id"`
	BankAccountID string `form:"bank_account_id"`
	ReceivedBy    string `form:"received_by" validate:"required"`
	Status        string `form:"status" validate:"required"`
	FailureReason string `form:"failure_reason"`

	Proof *repository.File `form:"-"`
}

// Check las transferencias necesitan cuenta destino.
func (f *PaymentForm) Check() error {
	if f.PaymentMethod == entity.MethodBankTransfer && f.BankAccountID == "" {
		return domain.NewValidationError("bank_account_id", "Please select a bank account")
	}
	return nil
}

// Payload multipart.
func (f *PaymentForm) Payload() any {
	return repository.NewMultipartForm().
		Set("invoice_id", f.InvoiceID).
		Set("amount", f.Amount).
		Set("payment_date", f.PaymentDate).
		Set("payment_method", f.PaymentMethod).
		Set("transaction_id", f.TransactionID).
		Set("bank_account_id", f.BankAccountID).
		Set("received_by", f.ReceivedBy).
		Set("status", f.Status).
		Set("failure_reason", f.FailureReason).
		Attach(f.Proof)
}

// PaymentFormFrom precarga el formulario de edición.
func PaymentFormFrom(p *entity.Payment) *PaymentForm {
	return &PaymentForm{
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount.String(),
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		BankAccountID: p.BankAccountID,
		ReceivedBy:    p.ReceivedBy,
		Status:        p.Status,
		FailureReason: p.FailureReason,
	}
}

// PublicPaymentForm formulario de la página pública de factura.
type PublicPaymentForm struct {
	Amount        string `form:"amount" validate:"required,numeric"`
	PaymentMethod string `form:"payment_method" validate:"required"`
	BankAccountID string `form:"bank_account_id"`
	TransactionID string `form:"transaction_id"`
	PaymentDate   string `form:"payment_date" validate:"required"`

	Proof *repository.File `form:"-"`
}

// Mensajes fijos de la página pública.
const (
	MsgProofRequired       = "Please upload a payment proof (screenshot/image)"
	MsgBankAccountRequired = "Please select a bank account"
)

// Check comprobante obligatorio y cuenta destino para transferencias.
// Se evalúa antes de cualquier llamada al backend.
func (f *PublicPaymentForm) Check() error {
	if f.Proof == nil || len(f.Proof.Data) == 0 {
		return domain.NewValidationError("payment_proof", MsgProofRequired)
	}
	if f.PaymentMethod == entity.MethodBankTransfer && f.BankAccountID == "" {
		return domain.NewValidationError("bank_account_id", MsgBankAccountRequired)
	}
	return nil
}

// Multipart cuerpo de POST /public/payment/submit.
func (f *PublicPaymentForm) Multipart(invoiceID string) *repository.MultipartForm {
	return repository.NewMultipartForm().
		Set("invoice_id", invoiceID).
		Set("amount", f.Amount).
		Set("payment_method", f.PaymentMethod).
		Set("bank_account_id", f.BankAccountID).
		Set("transaction_id", f.TransactionID).
		Set("payment_date", f.PaymentDate).
		Attach(f.Proof)
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// TaskForm POST /tasks/add|update. AssignedTo llega aplanado ("id1,id2") desde el multi-select.
type TaskForm struct {
	CustomerID string `form:"customer_id"`
	TaskType   string `form:"task_type" validate:"required"`
	AssignedTo string `form:"-" name:"assigned_to" validate:"required"`
	Priority   string `form:"priority" validate:"required,oneof=low medium high critical"`
	DueDate    string `form:"due_date" validate:"required"`
	Status     string `form:"status" validate:"required"`
	Notes      string `form:"notes"`
}

type taskPayload struct {
	CustomerID string   `json:"customer_id,omitempty"`
	TaskType   string   `json:"task_type"`
	AssignedTo []string `json:"assigned_to"`
	Priority   string   `json:"priority"`
	DueDate    string   `json:"due_date"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes"`
}

// Payload JSON; assigned_to viaja como arreglo.
func (f *TaskForm) Payload() any {
	return taskPayload{
		CustomerID: f.CustomerID,
		TaskType:   f.TaskType,
		AssignedTo: SplitMulti(f.AssignedTo),
		Priority:   f.Priority,
		DueDate:    f.DueDate,
		Status:     f.Status,
		Notes:      f.Notes,
	}
}

// TaskFormFrom precarga el formulario de edición.
func TaskFormFrom(t *entity.Task) *TaskForm {
	return &TaskForm{
		CustomerID: t.CustomerID,
		TaskType:   t.TaskType,
		AssignedTo: FlattenMulti(t.AssignedTo),
		Priority:   string(t.Priority),
		DueDate:    t.DueDate,
		Status:     string(t.Status),
		Notes:      t.Notes,
	}
}

// RecoveryTaskForm POST /recovery-tasks/add|update.
type RecoveryTaskForm struct {
	InvoiceID  string `form:"invoice_id" json:"invoice_id" validate:"required"`
	AssignedTo string `form:"assigned_to" json:"assigned_to" validate:"required"`
	Status     string `form:"status" json:"status" validate:"required"`
	Notes      string `form:"notes" json:"notes"`
}

// Payload JSON.
func (f *RecoveryTaskForm) Payload() any { return f }

// RecoveryTaskFormFrom precarga el formulario de edición.
func RecoveryTaskFormFrom(r *entity.RecoveryTask) *RecoveryTaskForm {
	return &RecoveryTaskForm{InvoiceID: r.InvoiceID, AssignedTo: r.AssignedTo, Status: string(r.Status), Notes: r.Notes}
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryForm POST /inventory/add|update.
type InventoryForm struct {
	ItemType     string `form:"item_type" json:"item_type" validate:"required"`
	Model        string `form:"model" json:"model" validate:"required"`
	SerialNumber string `form:"serial_number" json:"serial_number,omitempty"`
	MACAddress   string `form:"mac_address" json:"mac_address,omitempty"`
	Quantity     string `form:"quantity" json:"quantity" validate:"required,number"`
	UnitPrice    string `form:"unit_price" json:"unit_price" validate:"required,numeric"`
	Vendor       string `form:"vendor" json:"vendor,omitempty"`
}

// Payload JSON.
func (f *InventoryForm) Payload() any { return f }

// InventoryFormFrom precarga el formulario de edición.
func InventoryFormFrom(it *entity.InventoryItem) *InventoryForm {
	return &InventoryForm{
		ItemType:     it.ItemType,
		Model:        it.Model,
		SerialNumber: it.SerialNumber,
		MACAddress:   it.MACAddress,
		Quantity:     strconv.Itoa(it.Quantity),
		UnitPrice:    it.UnitPrice.String(),
		Vendor:       it.Vendor,
	}
}

// ── Empleados y catálogos ─────────────────────────────────────────────────────

// EmployeeForm POST /employees/add|update. La contraseña es obligatoria solo al crear.
type EmployeeForm struct {
	FirstName       string `form:"first_name" json:"first_name" validate:"required"`
	LastName        string `form:"last_name" json:"last_name" validate:"required"`
	ContactNumber   string `form:"contact_number" json:"contact_number" validate:"required"`
	CNIC            string `form:"cnic" json:"cnic" validate:"required"`
	Username        string `form:"username" json:"username" validate:"required"`
	Email           string `form:"email" json:"email,omitempty" validate:"omitempty,email"`
	Password        string `form:"password" json:"password,omitempty"`
	ConfirmPassword string `form:"confirm_password" json:"-" validate:"eqfield=Password"`
	Role            string `form:"role" json:"role" validate:"required"`
	Salary          string `form:"salary" json:"salary" validate:"required,numeric"`

	Editing bool `form:"-" json:"-"`
}

// Check contraseña obligatoria al crear.
func (f *EmployeeForm) Check() error {
	if !f.Editing && Blank(f.Password) {
		return domain.NewValidationError("password", "Password is required")
	}
	return nil
}

// Payload JSON.
func (f *EmployeeForm) Payload() any { return f }

// EmployeeFormFrom precarga el formulario de edición; la contraseña nunca se precarga.
func EmployeeFormFrom(e *entity.Employee) *EmployeeForm {
	return &EmployeeForm{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		ContactNumber: e.ContactNumber,
		CNIC:          e.CNIC,
		Username:      e.Username,
		Email:         e.Email,
		Role:          e.Role,
		Salary:        e.Salary.String(),
		Editing:       true,
	}
}

// AreaForm POST /areas/add|update.
type AreaForm struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description"`
}

// Payload JSON.
func (f *AreaForm) Payload() any { return f }

// AreaFormFrom precarga el formulario de edición.
func AreaFormFrom(a *entity.Area) *AreaForm {
	return &AreaForm{Name: a.Name, Description: a.Description}
}

// ServicePlanForm POST /service-plans/add|update.
type ServicePlanForm struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description"`
	Price       string `form:"price" json:"price" validate:"required,numeric"`
	Bandwidth   string `form:"bandwidth" json:"bandwidth"`
}

// Payload JSON.
func (f *ServicePlanForm) Payload() any { return f }

// ServicePlanFormFrom precarga el formulario de edición.
func ServicePlanFormFrom(sp *entity.ServicePlan) *ServicePlanForm {
	return &ServicePlanForm{Name: sp.Name, Description: sp.Description, Price: sp.Price.String(), Bandwidth: sp.Bandwidth}
}

// ── Gastos, pagos a ISP y proveedores ─────────────────────────────────────────

// ExpenseForm POST /expenses/add|update.
type ExpenseForm struct {
	ExpenseType   string `form:"expense_type" json:"expense_type" validate:"required"`
	Amount        string `form:"amount" json:"amount" validate:"required,numeric"`
	ExpenseDate   string `form:"expense_date" json:"expense_date" validate:"required"`
	PaymentMethod string `form:"payment_method" json:"payment_method,omitempty"`
	VendorPayee   string `form:"vendor_payee" json:"vendor_payee,omitempty"`
	Description   string `form:"description" json:"description,omitempty"`
	BankAccountID string `form:"bank_account_id" json:"bank_account_id,omitempty"`
}

// Check los pagos por banco u online necesitan cuenta de origen.
func (f *ExpenseForm) Check() error {
	if entity.PayoutNeedsBankAccount(f.PaymentMethod) && f.BankAccountID == "" {
		return domain.NewValidationError("bank_account_id", MsgBankAccountRequired)
	}
	return nil
}

// Payload JSON.
func (f *ExpenseForm) Payload() any { return f }

// ExpenseFormFrom precarga el formulario de edición.
func ExpenseFormFrom(e *entity.Expense) *ExpenseForm {
	return &ExpenseForm{
		ExpenseType:   e.ExpenseType,
		Amount:        e.Amount.String(),
		ExpenseDate:   e.ExpenseDate,
		PaymentMethod: e.PaymentMethod,
		VendorPayee:   e.VendorPayee,
		Description:   e.Description,
		BankAccountID: e.BankAccountID,
	}
}

// ISPPaymentForm POST /isp-payments/add|update (multipart por el comprobante).
type ISPPaymentForm struct {
	ISPID            string `form:"isp_id" validate:"required"`
	PaymentType      string `form:"payment_type" validate:"required"`
	Amount           string `form:"amount" validate:"required,numeric"`
	PaymentDate      string `form:"payment_date" validate:"required"`
	BillingPeriod    string `form:"billing_period" validate:"required"`
	PaymentMethod    string `form:"payment_method" validate:"required"`
	BankAccountID    string `form:"bank_account_id"`
	TransactionID    string `form:"transaction_id"`
	ReferenceNumber  string `form:"reference_number"`
	BandwidthUsageGB string `form:"bandwidth_usage_gb" validate:"omitempty,numeric"`
	RatePerGB        string `form:"rate_per_gb" validate:"omitempty,numeric"`
	Description      string `form:"description"`

	Proof *repository.File `form:"-"`
}

// Check pagos por banco con cuenta; el cobro por consumo necesita los GB.
func (f *ISPPaymentForm) Check() error {
	if entity.PayoutNeedsBankAccount(f.PaymentMethod) && f.BankAccountID == "" {
		return domain.NewValidationError("bank_account_id", MsgBankAccountRequired)
	}
	if f.PaymentType == "bandwidth_usage" && Blank(f.BandwidthUsageGB) {
		return domain.NewValidationError("bandwidth_usage_gb", "Bandwidth usage is required for usage-based payments")
	}
	return nil
}

// Payload multipart.
func (f *ISPPaymentForm) Payload() any {
	return repository.NewMultipartForm().
		Set("isp_id", f.ISPID).
		Set("payment_type", f.PaymentType).
		Set("amount", f.Amount).
		Set("payment_date", f.PaymentDate).
		Set("billing_period", f.BillingPeriod).
		Set("payment_method", f.PaymentMethod).
		Set("bank_account_id", f.BankAccountID).
		Set("transaction_id", f.TransactionID).
		Set("reference_number", f.ReferenceNumber).
		Set("bandwidth_usage_gb", f.BandwidthUsageGB).
		Set("rate_per_gb", f.RatePerGB).
		Set("description", f.Description).
		Attach(f.Proof)
}

// ISPPaymentFormFrom precarga el formulario de edición.
func ISPPaymentFormFrom(p *entity.ISPPayment) *ISPPaymentForm {
	f := &ISPPaymentForm{
		ISPID:           p.ISPID,
		PaymentType:     p.PaymentType,
		Amount:          p.Amount.String(),
		PaymentDate:     p.PaymentDate,
		BillingPeriod:   p.BillingPeriod,
		PaymentMethod:   p.PaymentMethod,
		BankAccountID:   p.BankAccountID,
		TransactionID:   p.TransactionID,
		ReferenceNumber: p.ReferenceNumber,
		Description:     p.Description,
	}
	if !p.BandwidthUsageGB.IsZero() {
		f.BandwidthUsageGB = p.BandwidthUsageGB.String()
	}
	if !p.RatePerGB.IsZero() {
		f.RatePerGB = p.RatePerGB.String()
	}
	return f
}

// VendorForm POST /vendors/add|update (multipart por foto y documentos).
type VendorForm struct {
	Name  string `form:"name" validate:"required"`
	Phone string `form:"phone" validate:"required"`
	Email string `form:"email" validate:"omitempty,email"`
	CNIC  string `form:"cnic" validate:"required"`

	Files []repository.File `form:"-"`
}

// Payload multipart con los documentos adjuntos.
func (f *VendorForm) Payload() any {
	m := repository.NewMultipartForm().
		Set("name", f.Name).
		Set("phone", f.Phone).
		Set("email", f.Email).
		Set("cnic", f.CNIC)
	for i := range f.Files {
		m.Attach(&f.Files[i])
	}
	return m
}

// VendorFormFrom precarga el formulario de edición.
func VendorFormFrom(v *entity.Vendor) *VendorForm {
	return &VendorForm{Name: v.Name, Phone: v.Phone, Email: v.Email, CNIC: v.CNIC}
}

// ── Catálogos de red y bancos ─────────────────────────────────────────────────

// SubZoneForm POST /sub-zones/add|update.
type SubZoneForm struct {
	AreaID      string `form:"area_id" json:"area_id" validate:"required"`
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description"`
}

// Payload JSON.
func (f *SubZoneForm) Payload() any { return f }

// SubZoneFormFrom precarga el formulario de edición.
func SubZoneFormFrom(z *entity.SubZone) *SubZoneForm {
	return &SubZoneForm{AreaID: z.AreaID, Name: z.Name, Description: z.Description}
}

// BankAccountForm POST /bank-accounts/add|update.
type BankAccountForm struct {
	BankName      string `form:"bank_name" json:"bank_name" validate:"required"`
	AccountTitle  string `form:"account_title" json:"account_title" validate:"required"`
	AccountNumber string `form:"account_number" json:"account_number" validate:"required"`
	IBAN          string `form:"iban" json:"iban,omitempty"`
	BranchCode    string `form:"branch_code" json:"branch_code,omitempty"`
}

// Payload JSON.
func (f *BankAccountForm) Payload() any { return f }

// BankAccountFormFrom precarga el formulario de edición.
func BankAccountFormFrom(b *entity.BankAccount) *BankAccountForm {
	return &BankAccountForm{
		BankName:      b.BankName,
		AccountTitle:  b.AccountTitle,
		AccountNumber: b.AccountNumber,
		IBAN:          b.IBAN,
		BranchCode:    b.BranchCode,
	}
}

// ISPForm POST /isps/add|update.
type ISPForm struct {
	Name          string `form:"name" json:"name" validate:"required"`
	ContactPerson string `form:"contact_person" json:"contact_person" validate:"required"`
	Email         string `form:"email" json:"email" validate:"required,email"`
	Phone         string `form:"phone" json:"phone" validate:"required"`
	Address       string `form:"address" json:"address" validate:"required"`
}

// Payload JSON.
func (f *ISPForm) Payload() any { return f }

// ISPFormFrom precarga el formulario de edición.
func ISPFormFrom(i *entity.ISP) *ISPForm {
	return &ISPForm{Name: i.Name, ContactPerson: i.ContactPerson, Email: i.Email, Phone: i.Phone, Address: i.Address}
}

// LoginForm POST /login.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
