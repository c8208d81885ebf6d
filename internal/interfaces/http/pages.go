package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/inventory"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// Cada recurso del panel es un crudPage configurado con su caso de uso, su tabla y sus campos.

func customerPages(b base, d RouterDeps) *crudPage[entity.Customer, *dto.CustomerForm] {
	uc := d.CustomerUC
	return &crudPage[entity.Customer, *dto.CustomerForm]{
		base: b, key: "customers", title: "Customers", singular: "Customer",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.CustomerForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.CustomerForm, error) {
			cu, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.CustomerFormFrom(cu), nil
		},
		newForm: func() *dto.CustomerForm { return &dto.CustomerForm{ConnectionType: "internet"} },
		bind: func(c *fiber.Ctx, f *dto.CustomerForm) (err error) {
			f.Files, err = formFiles(c, "cnic_front_image", "cnic_back_image", "agreement_document")
			return err
		},
		fields:    customerFields,
		table:     customerTable,
		refKinds:  []dto.RefKind{dto.RefAreas, dto.RefServicePlans, dto.RefISPs},
		refs:      d.ReferenceUC,
		multipart: true,
	}
}

func complaintPages(b base, d RouterDeps) *crudPage[entity.Complaint, *dto.ComplaintForm] {
	uc := d.ComplaintUC
	return &crudPage[entity.Complaint, *dto.ComplaintForm]{
		base: b, key: "complaints", title: "Complaints", singular: "Complaint",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.ComplaintForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.ComplaintForm, error) {
			cp, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.ComplaintFormFrom(cp), nil
		},
		newForm: func() *dto.ComplaintForm { return &dto.ComplaintForm{Priority: string(entity.PriorityMedium)} },
		bind: func(c *fiber.Ctx, f *dto.ComplaintForm) (err error) {
			f.Files, err = formFiles(c, "attachment")
			return err
		},
		fields:    complaintFields,
		table:     complaintTable,
		refKinds:  []dto.RefKind{dto.RefCustomers, dto.RefEmployees},
		refs:      d.ReferenceUC,
		multipart: true,
	}
}

func invoicePages(b base, d RouterDeps) *crudPage[entity.Invoice, *dto.InvoiceForm] {
	uc := d.InvoiceUC
	return &crudPage[entity.Invoice, *dto.InvoiceForm]{
		base: b, key: "invoices", title: "Invoices", singular: "Invoice",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.InvoiceForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.InvoiceForm, error) {
			inv, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.InvoiceFormFrom(inv), nil
		},
		newForm:  func() *dto.InvoiceForm { return &dto.InvoiceForm{InvoiceType: "subscription"} },
		fields:   invoiceFields,
		table:    invoiceTable,
		refKinds: []dto.RefKind{dto.RefCustomers},
		refs:     d.ReferenceUC,
	}
}

func paymentPages(b base, d RouterDeps) *crudPage[entity.Payment, *dto.PaymentForm] {
	uc := d.PaymentUC
	return &crudPage[entity.Payment, *dto.PaymentForm]{
		base: b, key: "payments", title: "Payments", singular: "Payment",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.PaymentForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.PaymentForm, error) {
			p, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.PaymentFormFrom(p), nil
		},
		newForm: func() *dto.PaymentForm {
			return &dto.PaymentForm{PaymentMethod: entity.MethodCash, Status: entity.PaymentCompleted}
		},
		bind: func(c *fiber.Ctx, f *dto.PaymentForm) (err error) {
			f.Proof, err = formFile(c, "payment_proof")
			return err
		},
		fields:    paymentFields,
		table:     paymentTable,
		refKinds:  []dto.RefKind{dto.RefInvoices, dto.RefEmployees, dto.RefBankAccounts},
		refs:      d.ReferenceUC,
		multipart: true,
	}
}

func taskPages(b base, d RouterDeps) *crudPage[entity.Task, *dto.TaskForm] {
	uc := d.TaskUC
	return &crudPage[entity.Task, *dto.TaskForm]{
		base: b, key: "tasks", title: "Tasks", singular: "Task",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.TaskForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.TaskForm, error) {
			t, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.TaskFormFrom(t), nil
		},
		newForm: func() *dto.TaskForm {
			return &dto.TaskForm{Priority: string(entity.PriorityMedium), Status: string(entity.TaskPending)}
		},
		bind: func(c *fiber.Ctx, f *dto.TaskForm) error {
			f.AssignedTo = dto.FlattenMulti(formValues(c, "assigned_to"))
			return nil
		},
		fields:   taskFields,
		table:    taskTable,
		refKinds: []dto.RefKind{dto.RefCustomers, dto.RefEmployees},
		refs:     d.ReferenceUC,
	}
}

func recoveryTaskPages(b base, d RouterDeps) *crudPage[entity.RecoveryTask, *dto.RecoveryTaskForm] {
	uc := d.RecoveryTaskUC
	return &crudPage[entity.RecoveryTask, *dto.RecoveryTaskForm]{
		base: b, key: "recovery-tasks", title: "Recovery Tasks", singular: "Recovery task",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.RecoveryTaskForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.RecoveryTaskForm, error) {
			r, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.RecoveryTaskFormFrom(r), nil
		},
		newForm:  func() *dto.RecoveryTaskForm { return &dto.RecoveryTaskForm{Status: string(entity.TaskPending)} },
		fields:   recoveryTaskFields,
		table:    recoveryTaskTable,
		refKinds: []dto.RefKind{dto.RefInvoices, dto.RefEmployees},
		refs:     d.ReferenceUC,
	}
}

func inventoryPages(b base, d RouterDeps) *crudPage[entity.InventoryItem, *dto.InventoryForm] {
	uc := d.InventoryUC
	return &crudPage[entity.InventoryItem, *dto.InventoryForm]{
		base: b, key: "inventory", title: "Inventory", singular: "Item",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.InventoryForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.InventoryForm, error) {
			it, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.InventoryFormFrom(it), nil
		},
		newForm: func() *dto.InventoryForm { return &dto.InventoryForm{ItemType: entity.InventoryItemTypes[0]} },
		fields:  inventoryFields,
		table:   inventoryTable,
		summary: func(items []entity.InventoryItem) *dto.Panel {
			return inventoryPanel(uc.Summary(items))
		},
	}
}

// inventoryPanel cabecera del listado de inventario.
func inventoryPanel(s *inventory.Summary) *dto.Panel {
	p := &dto.Panel{
		Key:   "inventory",
		Title: "Stock Summary",
		KPIs: []dto.KPI{
			{Label: "Items", Value: money.Format(decimalInt(len(s.Items)))},
			{Label: "Units in Stock", Value: money.Format(decimalInt(s.Units))},
			{Label: "Stock Value", Value: money.PKR(s.Value)},
			{Label: "Low Stock", Value: money.Format(decimalInt(len(s.LowStock)))},
		},
	}
	if len(s.ByType) > 0 {
		labels := make([]string, len(s.ByType))
		values := make([]decimal.Decimal, len(s.ByType))
		for i, ts := range s.ByType {
			labels[i] = ts.ItemType
			values[i] = ts.Value
		}
		p.Charts = append(p.Charts, dto.NewBarChart("Stock Value by Type", labels, values, money.PKR))
	}
	for _, it := range s.LowStock {
		p.Notes = append(p.Notes, it.ItemType+" "+it.Model+": "+money.Format(decimalInt(it.Quantity))+" left")
	}
	return p
}

func employeePages(b base, d RouterDeps) *crudPage[entity.Employee, *dto.EmployeeForm] {
	uc := d.EmployeeUC
	return &crudPage[entity.Employee, *dto.EmployeeForm]{
		base: b, key: "employees", title: "Employees", singular: "Employee",
		list:   uc.List,
		save:   uc.Save,
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.EmployeeForm, error) {
			e, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.EmployeeFormFrom(e), nil
		},
		newForm: func() *dto.EmployeeForm { return &dto.EmployeeForm{Role: "employee"} },
		fields: employeeFields,
		table:  employeeTable,
	}
}

func areaPages(b base, d RouterDeps) *crudPage[entity.Area, *dto.AreaForm] {
	uc := d.AreaUC
	return &crudPage[entity.Area, *dto.AreaForm]{
		base: b, key: "areas", title: "Areas", singular: "Area",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.AreaForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.AreaForm, error) {
			a, err := uc.Find(ctx, id, func(a entity.Area) string { return a.ID })
			if err != nil {
				return nil, err
			}
			return dto.AreaFormFrom(a), nil
		},
		newForm: func() *dto.AreaForm { return &dto.AreaForm{} },
		fields:  areaFields,
		table:   areaTable,
	}
}

func servicePlanPages(b base, d RouterDeps) *crudPage[entity.ServicePlan, *dto.ServicePlanForm] {
	uc := d.ServicePlanUC
	return &crudPage[entity.ServicePlan, *dto.ServicePlanForm]{
		base: b, key: "service-plans", title: "Service Plans", singular: "Service plan",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.ServicePlanForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.ServicePlanForm, error) {
			sp, err := uc.Find(ctx, id, func(sp entity.ServicePlan) string { return sp.ID })
			if err != nil {
				return nil, err
			}
			return dto.ServicePlanFormFrom(sp), nil
		},
		newForm: func() *dto.ServicePlanForm { return &dto.ServicePlanForm{} },
		fields:  servicePlanFields,
		table:   servicePlanTable,
	}
}

// ── Finanzas y proveedores ────────────────────────────────────────────────────

func expensePages(b base, d RouterDeps) *crudPage[entity.Expense, *dto.ExpenseForm] {
	uc := d.ExpenseUC
	return &crudPage[entity.Expense, *dto.ExpenseForm]{
		base: b, key: "expenses", title: "Expenses", singular: "Expense",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.ExpenseForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.ExpenseForm, error) {
			e, err := uc.Find(ctx, id, func(e entity.Expense) string { return e.ID })
			if err != nil {
				return nil, err
			}
			return dto.ExpenseFormFrom(e), nil
		},
		newForm:  func() *dto.ExpenseForm { return &dto.ExpenseForm{PaymentMethod: "cash"} },
		fields:   expenseFields,
		table:    expenseTable,
		refKinds: []dto.RefKind{dto.RefBankAccounts},
		refs:     d.ReferenceUC,
	}
}

func ispPaymentPages(b base, d RouterDeps) *crudPage[entity.ISPPayment, *dto.ISPPaymentForm] {
	uc := d.ISPPaymentUC
	return &crudPage[entity.ISPPayment, *dto.ISPPaymentForm]{
		base: b, key: "isp-payments", title: "ISP Payments", singular: "ISP payment",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.ISPPaymentForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.ISPPaymentForm, error) {
			p, err := uc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.ISPPaymentFormFrom(p), nil
		},
		newForm: func() *dto.ISPPaymentForm {
			return &dto.ISPPaymentForm{PaymentType: "monthly_subscription", PaymentMethod: "bank_transfer"}
		},
		bind: func(c *fiber.Ctx, f *dto.ISPPaymentForm) (err error) {
			f.Proof, err = formFile(c, "payment_proof")
			return err
		},
		fields:    ispPaymentFields,
		table:     ispPaymentTable,
		refKinds:  []dto.RefKind{dto.RefISPs, dto.RefBankAccounts},
		refs:      d.ReferenceUC,
		multipart: true,
	}
}

// ispPaymentProof GET /isp-payments/:id/proof.
func ispPaymentProof(uc *usecase.ISPPaymentUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blob, err := uc.ProofImage(ctx(c), c.Params("id"))
		if err != nil {
			return err
		}
		return sendBlob(c, blob, "isp-payment-proof")
	}
}

func vendorPages(b base, d RouterDeps) *crudPage[entity.Vendor, *dto.VendorForm] {
	uc := d.VendorUC
	return &crudPage[entity.Vendor, *dto.VendorForm]{
		base: b, key: "vendors", title: "Vendors", singular: "Vendor",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.VendorForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.VendorForm, error) {
			v, err := uc.Find(ctx, id, func(v entity.Vendor) string { return v.ID })
			if err != nil {
				return nil, err
			}
			return dto.VendorFormFrom(v), nil
		},
		newForm: func() *dto.VendorForm { return &dto.VendorForm{} },
		bind: func(c *fiber.Ctx, f *dto.VendorForm) (err error) {
			f.Files, err = formFiles(c, "picture", "cnic_front_image", "cnic_back_image", "agreement_document")
			return err
		},
		fields:    vendorFields,
		table:     vendorTable,
		multipart: true,
	}
}

// ── Red, bancos y auditoría ───────────────────────────────────────────────────

func subZonePages(b base, d RouterDeps) *crudPage[entity.SubZone, *dto.SubZoneForm] {
	uc := d.SubZoneUC
	return &crudPage[entity.SubZone, *dto.SubZoneForm]{
		base: b, key: "sub-zones", title: "Sub Zones", singular: "Sub zone",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.SubZoneForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.SubZoneForm, error) {
			z, err := uc.Find(ctx, id, func(z entity.SubZone) string { return z.ID })
			if err != nil {
				return nil, err
			}
			return dto.SubZoneFormFrom(z), nil
		},
		newForm:  func() *dto.SubZoneForm { return &dto.SubZoneForm{} },
		fields:   subZoneFields,
		table:    subZoneTable,
		refKinds: []dto.RefKind{dto.RefAreas},
		refs:     d.ReferenceUC,
	}
}

func bankAccountPages(b base, d RouterDeps) *crudPage[entity.BankAccount, *dto.BankAccountForm] {
	uc := d.BankAccountUC
	return &crudPage[entity.BankAccount, *dto.BankAccountForm]{
		base: b, key: "bank-accounts", title: "Bank Accounts", singular: "Bank account",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.BankAccountForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.BankAccountForm, error) {
			ba, err := uc.Find(ctx, id, func(ba entity.BankAccount) string { return ba.ID })
			if err != nil {
				return nil, err
			}
			return dto.BankAccountFormFrom(ba), nil
		},
		newForm: func() *dto.BankAccountForm { return &dto.BankAccountForm{} },
		fields:  bankAccountFields,
		table:   bankAccountTable,
	}
}

func ispPages(b base, d RouterDeps) *crudPage[entity.ISP, *dto.ISPForm] {
	uc := d.ISPUC
	return &crudPage[entity.ISP, *dto.ISPForm]{
		base: b, key: "isps", title: "ISPs", singular: "ISP",
		list:   uc.List,
		save:   func(ctx context.Context, id string, f *dto.ISPForm) error { return uc.Save(ctx, id, f) },
		delete: uc.Delete,
		load: func(ctx context.Context, id string) (*dto.ISPForm, error) {
			i, err := uc.Find(ctx, id, func(i entity.ISP) string { return i.ID })
			if err != nil {
				return nil, err
			}
			return dto.ISPFormFrom(i), nil
		},
		newForm: func() *dto.ISPForm { return &dto.ISPForm{} },
		fields:  ispFields,
		table:   ispTable,
	}
}

// auditLogPages el registro de auditoría solo se lista y exporta.
func auditLogPages(b base, d RouterDeps) *crudPage[entity.AuditLog, dto.Form] {
	return &crudPage[entity.AuditLog, dto.Form]{
		base: b, key: "logs", title: "Logs", singular: "Log",
		list:     d.AuditLogUC.List,
		table:    auditLogTable,
		readOnly: true,
	}
}
