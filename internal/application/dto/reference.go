package dto

import "github.com/jhoicas/isp-backoffice/internal/domain/entity"

// RefKind lista auxiliar de un formulario.
type RefKind string

const (
	RefAreas        RefKind = "areas"
	RefServicePlans RefKind = "service_plans"
	RefEmployees    RefKind = "employees"
	RefBankAccounts RefKind = "bank_accounts"
	RefISPs         RefKind = "isps"
	RefCustomers    RefKind = "customers"
	RefInvoices     RefKind = "invoices"
)

// ReferenceLists listas para los selects. Una lista que falla queda vacía y su error
// se guarda en Errors; el formulario se renderiza igual.
type ReferenceLists struct {
	Areas        []entity.Area
	ServicePlans []entity.ServicePlan
	Employees    []entity.Employee
	BankAccounts []entity.BankAccount
	ISPs         []entity.ISP
	Customers    []entity.Customer
	Invoices     []entity.Invoice
	Errors       map[RefKind]string
}

// AreaOptions opciones de área.
func (r *ReferenceLists) AreaOptions(selected string) []Option {
	pairs := make([][2]string, 0, len(r.Areas))
	for _, a := range r.Areas {
		pairs = append(pairs, [2]string{a.ID, a.Name})
	}
	return Options(pairs, selected)
}

// ServicePlanOptions opciones de plan.
func (r *ReferenceLists) ServicePlanOptions(selected string) []Option {
	pairs := make([][2]string, 0, len(r.ServicePlans))
	for _, p := range r.ServicePlans {
		pairs = append(pairs, [2]string{p.ID, p.Name})
	}
	return Options(pairs, selected)
}

// EmployeeOptions opciones de empleado (admite selección múltiple).
func (r *ReferenceLists) EmployeeOptions(selected ...string) []Option {
	pairs := make([][2]string, 0, len(r.Employees))
	for _, e := range r.Employees {
		pairs = append(pairs, [2]string{e.ID, e.FullName()})
	}
	return Options(pairs, selected...)
}

// BankAccountOptions opciones de cuenta bancaria.
func (r *ReferenceLists) BankAccountOptions(selected string) []Option {
	return BankAccountOptions(r.BankAccounts, selected)
}

// BankAccountOptions "Banco - Título (Número)".
func BankAccountOptions(accounts []entity.BankAccount, selected string) []Option {
	pairs := make([][2]string, 0, len(accounts))
	for _, b := range accounts {
		pairs = append(pairs, [2]string{b.ID, b.Label()})
	}
	return Options(pairs, selected)
}

// ISPOptions opciones de ISP.
func (r *ReferenceLists) ISPOptions(selected string) []Option {
	pairs := make([][2]string, 0, len(r.ISPs))
	for _, i := range r.ISPs {
		pairs = append(pairs, [2]string{i.ID, i.Name})
	}
	return Options(pairs, selected)
}

// CustomerOptions opciones del combobox de clientes: "Nombre (internet id)".
func (r *ReferenceLists) CustomerOptions(selected string) []Option {
	pairs := make([][2]string, 0, len(r.Customers))
	for _, c := range r.Customers {
		label := c.FullName()
		if c.InternetID != "" {
			label += " (" + c.InternetID + ")"
		}
		pairs = append(pairs, [2]string{c.ID, label})
	}
	return Options(pairs, selected)
}

// InvoiceOptions opciones de factura: "número - cliente".
func (r *ReferenceLists) InvoiceOptions(selected string) []Option {
	pairs := make([][2]string, 0, len(r.Invoices))
	for _, i := range r.Invoices {
		label := i.InvoiceNumber
		if i.CustomerName != "" {
			label += " - " + i.CustomerName
		}
		pairs = append(pairs, [2]string{i.ID, label})
	}
	return Options(pairs, selected)
}
