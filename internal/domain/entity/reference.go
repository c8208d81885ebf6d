package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Area zona de cobertura.
type Area struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ServicePlan plan de internet.
type ServicePlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Bandwidth   string          `json:"bandwidth,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// Employee empleado (técnicos, recobradores, administración).
type Employee struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Username      string          `json:"username,omitempty"`
	Email         string          `json:"email,omitempty"`
	ContactNumber string          `json:"contact_number,omitempty"`
	CNIC          string          `json:"cnic,omitempty"`
	Role          string          `json:"role,omitempty"`
	Salary        decimal.Decimal `json:"salary"`
	IsActive      bool            `json:"is_active"`
}

// EmployeeRoles roles que acepta el backend, con su etiqueta.
var EmployeeRoles = [][2]string{
	{"auditor", "Auditor"},
	{"employee", "Employee"},
	{"company_owner", "Admin"},
	{"recovery_agent", "Recovery Agent"},
	{"technician", "Technician"},
}

// FullName nombre y apellido.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// BankAccount cuenta destino de transferencias.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountTitle  string `json:"account_title"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban,omitempty"`
	BranchCode    string `json:"branch_code,omitempty"`
	IsActive      bool   `json:"is_active"`
}

// Label "Banco - Título (Número)", como aparece en selects y tablas.
func (b BankAccount) Label() string {
	return b.BankName + " - " + b.AccountTitle + " (" + b.AccountNumber + ")"
}

// ISP proveedor mayorista de ancho de banda.
type ISP struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      bool   `json:"is_active"`
}
