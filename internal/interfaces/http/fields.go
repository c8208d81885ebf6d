package http

import (
	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// ── Constructores de campos ───────────────────────────────────────────────────

func textField(name, label, value string, required bool) dto.Field {
	return dto.Field{Name: name, Label: label, Type: "text", Value: value, Required: required}
}

func typedField(typ, name, label, value string, required bool) dto.Field {
	f := textField(name, label, value, required)
	f.Type = typ
	if typ == "number" {
		f.Step = "any"
	}
	return f
}

// selectField el template agrega la opción placeholder "Select <label>" antes de opts;
// con opts vacío solo queda el placeholder.
func selectField(name, label string, opts []dto.Option, required bool) dto.Field {
	return dto.Field{Name: name, Label: label, Type: "select", Options: opts, Required: required}
}

func fileField(name, label, accept string) dto.Field {
	return dto.Field{Name: name, Label: label, Type: "file", Accept: accept}
}

func stringOptions(values []string, selected string) []dto.Option {
	pairs := make([][2]string, 0, len(values))
	for _, v := range values {
		pairs = append(pairs, [2]string{v, v})
	}
	return dto.Options(pairs, selected)
}

func priorityOptions(selected string) []dto.Option {
	values := make([]string, 0, len(entity.Priorities))
	for _, p := range entity.Priorities {
		values = append(values, string(p))
	}
	return dto.EnumOptions(values, selected)
}

func taskStatusOptions(selected string) []dto.Option {
	values := make([]string, 0, len(entity.TaskStatuses))
	for _, s := range entity.TaskStatuses {
		values = append(values, string(s))
	}
	return dto.EnumOptions(values, selected)
}

// ── Formularios ───────────────────────────────────────────────────────────────

func customerFields(f *dto.CustomerForm, refs *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("internet_id", "Internet ID", f.InternetID, true),
		textField("first_name", "First Name", f.FirstName, true),
		textField("last_name", "Last Name", f.LastName, true),
		typedField("email", "email", "Email", f.Email, false),
		textField("phone_1", "Phone 1", f.Phone1, true),
		textField("phone_2", "Phone 2", f.Phone2, false),
		textField("cnic", "CNIC", f.CNIC, true),
		selectField("area_id", "Area", refs.AreaOptions(f.AreaID), true),
		selectField("service_plan_id", "Service Plan", refs.ServicePlanOptions(f.ServicePlanID), true),
		selectField("isp_id", "ISP", refs.ISPOptions(f.ISPID), false),
		typedField("textarea", "installation_address", "Installation Address", f.InstallationAddress, true),
		typedField("date", "installation_date", "Installation Date", f.InstallationDate, true),
		selectField("connection_type", "Connection Type", dto.Options(entity.ConnectionTypes, f.ConnectionType), true),
		selectField("internet_connection_type", "Internet Connection Type", dto.Options(entity.InternetConnectionTypes, f.InternetConnType), false),
		textField("gps_coordinates", "GPS Coordinates", f.GPSCoordinates, false),
		typedField("number", "discount_amount", "Discount Amount", f.DiscountAmount, false),
		typedField("date", "recharge_date", "Recharge Date", f.RechargeDate, false),
		fileField("cnic_front_image", "CNIC Front Image", "image/*"),
		fileField("cnic_back_image", "CNIC Back Image", "image/*"),
		fileField("agreement_document", "Agreement Document", "image/*,application/pdf"),
	}
}

func complaintFields(f *dto.ComplaintForm, refs *dto.ReferenceLists) []dto.Field {
	customer := selectField("customer_id", "Customer", refs.CustomerOptions(f.CustomerID), true)
	customer.Type = "combobox"
	return []dto.Field{
		customer,
		textField("title", "Title", f.Title, false),
		typedField("textarea", "description", "Description", f.Description, true),
		textField("category", "Category", f.Category, false),
		selectField("priority", "Priority", priorityOptions(f.Priority), false),
		selectField("assigned_to", "Assigned To", refs.EmployeeOptions(f.AssignedTo), false),
		fileField("attachment", "Attachment", "image/*,application/pdf"),
	}
}

func invoiceFields(f *dto.InvoiceForm, refs *dto.ReferenceLists) []dto.Field {
	customer := selectField("customer_id", "Customer", refs.CustomerOptions(f.CustomerID), true)
	customer.Type = "combobox"
	return []dto.Field{
		customer,
		selectField("invoice_type", "Invoice Type", dto.EnumOptions(entity.InvoiceTypes, f.InvoiceType), true),
		typedField("date", "billing_start_date", "Billing Start Date", f.BillingStartDate, true),
		typedField("date", "billing_end_date", "Billing End Date", f.BillingEndDate, true),
		typedField("date", "due_date", "Due Date", f.DueDate, true),
		typedField("number", "subtotal", "Subtotal", f.Subtotal, true),
		typedField("number", "discount_percentage", "Discount Percentage", f.DiscountPercentage, false),
		typedField("number", "total_amount", "Total Amount", f.TotalAmount, true),
		typedField("textarea", "notes", "Notes", f.Notes, false),
	}
}

func paymentFields(f *dto.PaymentForm, refs *dto.ReferenceLists) []dto.Field {
	invoice := selectField("invoice_id", "Invoice", refs.InvoiceOptions(f.InvoiceID), true)
	invoice.Type = "combobox"
	return []dto.Field{
		invoice,
		typedField("number", "amount", "Amount", f.Amount, true),
		typedField("date", "payment_date", "Payment Date", f.PaymentDate, true),
		selectField("payment_method", "Payment Method", stringOptions(entity.PaymentMethods, f.PaymentMethod), true),
		selectField("bank_account_id", "Bank Account", refs.BankAccountOptions(f.BankAccountID), false),
		textField("transaction_id", "Transaction ID", f.TransactionID, false),
		selectField("received_by", "Received By", refs.EmployeeOptions(f.ReceivedBy), true),
		selectField("status", "Status", dto.EnumOptions(entity.PaymentStatuses, f.Status), true),
		textField("failure_reason", "Failure Reason", f.FailureReason, false),
		fileField("payment_proof", "Payment Proof", "image/*"),
	}
}

func taskFields(f *dto.TaskForm, refs *dto.ReferenceLists) []dto.Field {
	customer := selectField("customer_id", "Customer", refs.CustomerOptions(f.CustomerID), false)
	customer.Type = "combobox"
	assigned := dto.Field{
		Name:     "assigned_to",
		Label:    "Assigned To",
		Type:     "multiselect",
		Values:   dto.SplitMulti(f.AssignedTo),
		Options:  refs.EmployeeOptions(dto.SplitMulti(f.AssignedTo)...),
		Required: true,
	}
	return []dto.Field{
		customer,
		selectField("task_type", "Task Type", dto.EnumOptions(entity.TaskTypes, f.TaskType), true),
		assigned,
		selectField("priority", "Priority", priorityOptions(f.Priority), true),
		typedField("date", "due_date", "Due Date", f.DueDate, true),
		selectField("status", "Status", taskStatusOptions(f.Status), true),
		typedField("textarea", "notes", "Notes", f.Notes, false),
	}
}

func recoveryTaskFields(f *dto.RecoveryTaskForm, refs *dto.ReferenceLists) []dto.Field {
	invoice := selectField("invoice_id", "Invoice", refs.InvoiceOptions(f.InvoiceID), true)
	invoice.Type = "combobox"
	return []dto.Field{
		invoice,
		selectField("assigned_to", "Assigned To", refs.EmployeeOptions(f.AssignedTo), true),
		selectField("status", "Status", taskStatusOptions(f.Status), true),
		typedField("textarea", "notes", "Notes", f.Notes, false),
	}
}

func inventoryFields(f *dto.InventoryForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		selectField("item_type", "Item Type", stringOptions(entity.InventoryItemTypes, f.ItemType), true),
		textField("model", "Model", f.Model, true),
		textField("serial_number", "Serial Number", f.SerialNumber, false),
		textField("mac_address", "MAC Address", f.MACAddress, false),
		typedField("number", "quantity", "Quantity", f.Quantity, true),
		typedField("number", "unit_price", "Unit Price", f.UnitPrice, true),
		textField("vendor", "Vendor", f.Vendor, false),
	}
}

func employeeFields(f *dto.EmployeeForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("first_name", "First Name", f.FirstName, true),
		textField("last_name", "Last Name", f.LastName, true),
		textField("username", "Username", f.Username, true),
		typedField("email", "email", "Email", f.Email, false),
		textField("contact_number", "Contact Number", f.ContactNumber, true),
		textField("cnic", "CNIC", f.CNIC, true),
		selectField("role", "Role", dto.Options(entity.EmployeeRoles, f.Role), true),
		typedField("number", "salary", "Salary", f.Salary, true),
		typedField("password", "password", "Password", "", !f.Editing),
		typedField("password", "confirm_password", "Confirm Password", "", false),
	}
}

func areaFields(f *dto.AreaForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("name", "Name", f.Name, true),
		typedField("textarea", "description", "Description", f.Description, false),
	}
}

func servicePlanFields(f *dto.ServicePlanForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("name", "Name", f.Name, true),
		typedField("number", "price", "Price", f.Price, true),
		textField("bandwidth", "Bandwidth", f.Bandwidth, false),
		typedField("textarea", "description", "Description", f.Description, false),
	}
}

func expenseFields(f *dto.ExpenseForm, refs *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		selectField("expense_type", "Expense Type", dto.EnumOptions(entity.ExpenseTypes, f.ExpenseType), true),
		typedField("number", "amount", "Amount", f.Amount, true),
		typedField("date", "expense_date", "Expense Date", f.ExpenseDate, true),
		selectField("payment_method", "Payment Method", dto.Options(entity.PayoutMethods, f.PaymentMethod), false),
		selectField("bank_account_id", "Bank Account", refs.BankAccountOptions(f.BankAccountID), false),
		textField("vendor_payee", "Vendor / Payee", f.VendorPayee, false),
		typedField("textarea", "description", "Description", f.Description, false),
	}
}

func ispPaymentFields(f *dto.ISPPaymentForm, refs *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		selectField("isp_id", "ISP", refs.ISPOptions(f.ISPID), true),
		selectField("payment_type", "Payment Type", dto.EnumOptions(entity.ISPPaymentTypes, f.PaymentType), true),
		typedField("number", "amount", "Amount", f.Amount, true),
		typedField("date", "payment_date", "Payment Date", f.PaymentDate, true),
		typedField("month", "billing_period", "Billing Period", f.BillingPeriod, true),
		selectField("payment_method", "Payment Method", dto.Options(entity.PayoutMethods, f.PaymentMethod), true),
		selectField("bank_account_id", "Bank Account", refs.BankAccountOptions(f.BankAccountID), false),
		textField("transaction_id", "Transaction ID", f.TransactionID, false),
		textField("reference_number", "Reference Number", f.ReferenceNumber, false),
		typedField("number", "bandwidth_usage_gb", "Bandwidth Usage (GB)", f.BandwidthUsageGB, false),
		typedField("number", "rate_per_gb", "Rate per GB", f.RatePerGB, false),
		typedField("textarea", "description", "Description", f.Description, false),
		fileField("payment_proof", "Payment Proof", "image/*"),
	}
}

func vendorFields(f *dto.VendorForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("name", "Name", f.Name, true),
		typedField("tel", "phone", "Phone", f.Phone, true),
		typedField("email", "email", "Email", f.Email, false),
		textField("cnic", "CNIC", f.CNIC, true),
		fileField("picture", "Picture", "image/*"),
		fileField("cnic_front_image", "CNIC Front", "image/*"),
		fileField("cnic_back_image", "CNIC Back", "image/*"),
		fileField("agreement_document", "Agreement", "image/*,application/pdf"),
	}
}

func subZoneFields(f *dto.SubZoneForm, refs *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		selectField("area_id", "Area", refs.AreaOptions(f.AreaID), true),
		textField("name", "Name", f.Name, true),
		typedField("textarea", "description", "Description", f.Description, false),
	}
}

func bankAccountFields(f *dto.BankAccountForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("bank_name", "Bank Name", f.BankName, true),
		textField("account_title", "Account Title", f.AccountTitle, true),
		textField("account_number", "Account Number", f.AccountNumber, true),
		textField("iban", "IBAN", f.IBAN, false),
		textField("branch_code", "Branch Code", f.BranchCode, false),
	}
}

func ispFields(f *dto.ISPForm, _ *dto.ReferenceLists) []dto.Field {
	return []dto.Field{
		textField("name", "Name", f.Name, true),
		textField("contact_person", "Contact Person", f.ContactPerson, true),
		typedField("email", "email", "Email", f.Email, true),
		typedField("tel", "phone", "Phone", f.Phone, true),
		typedField("textarea", "address", "Address", f.Address, true),
	}
}

// publicPaymentFields formulario de la página pública; las cuentas vienen del endpoint público.
func publicPaymentFields(f *dto.PublicPaymentForm, accounts []entity.BankAccount) []dto.Field {
	return []dto.Field{
		typedField("number", "amount", "Amount", f.Amount, true),
		selectField("payment_method", "Payment Method", stringOptions(entity.PaymentMethods, f.PaymentMethod), true),
		selectField("bank_account_id", "Bank Account", dto.BankAccountOptions(accounts, f.BankAccountID), false),
		textField("transaction_id", "Transaction ID", f.TransactionID, false),
		typedField("date", "payment_date", "Payment Date", f.PaymentDate, true),
		fileField("payment_proof", "Payment Proof", "image/*"),
	}
}
