package http

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// badge variante de color para un estado del backend.
func badge(status string) string {
	switch strings.ToLower(status) {
	case "paid", "completed", "resolved", "active", "approved":
		return "green"
	case "pending", "in_progress", "partially_paid", "medium":
		return "yellow"
	case "unpaid", "overdue", "failed", "high", "critical", "inactive", "cancelled", "rejected":
		return "red"
	case "open", "low":
		return "blue"
	default:
		return "gray"
	}
}

func activeCell(active bool) dto.Cell {
	if active {
		return dto.Cell{Text: "Active", Badge: "green"}
	}
	return dto.Cell{Text: "Inactive", Badge: "red"}
}

func statusCell(status string) dto.Cell {
	return dto.Cell{Text: entity.HumanizeEnum(status), Badge: badge(status)}
}

func editAction(key, id string) dto.RowAction {
	return dto.RowAction{Label: "Edit", Href: "/" + key + "/" + id + "/edit", Kind: "neutral"}
}

func deleteAction(key, id, singular string) dto.RowAction {
	return dto.RowAction{
		Label:   "Delete",
		Href:    "/" + key + "/" + id + "/delete",
		Method:  "post",
		Confirm: "Are you sure you want to delete this " + strings.ToLower(singular) + "?",
		Kind:    "danger",
	}
}

func newTable(key, title string) dto.Table {
	return dto.Table{
		Title:      title,
		CreateHref: "/" + key + "/new",
		ExportHref: "/" + key + "/export",
		Empty:      "No " + strings.ToLower(title) + " found",
	}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func customerTable(items []entity.Customer) dto.Table {
	t := newTable("customers", "Customers")
	t.Headers = []string{"Internet ID", "Name", "Phone", "Area", "Service Plan", "Connection", "Status"}
	for _, cu := range items {
		toggle := "Deactivate"
		if !cu.IsActive {
			toggle = "Activate"
		}
		t.Rows = append(t.Rows, dto.TableRow{
			ID: cu.ID,
			Cells: []dto.Cell{
				{Text: cu.InternetID},
				{Text: cu.FullName(), Href: "/customers/" + cu.ID},
				{Text: cu.Phone1},
				{Text: cu.AreaName},
				{Text: cu.ServicePlanName},
				{Text: entity.HumanizeEnum(cu.ConnectionType)},
				activeCell(cu.IsActive),
			},
			Actions: []dto.RowAction{
				{Label: "View", Href: "/customers/" + cu.ID, Kind: "primary"},
				editAction("customers", cu.ID),
				{Label: toggle, Href: "/customers/" + cu.ID + "/toggle", Method: "post", Kind: "neutral"},
				deleteAction("customers", cu.ID, "Customer"),
			},
		})
	}
	return t
}

// ── Quejas ────────────────────────────────────────────────────────────────────

// complaintStatusAction botón de estado: procesar o resolver. Solo se deshabilita con
// el ticket resuelto o cerrado; un estado sin transición queda habilitado y el
// diálogo lo rechaza con un toast.
func complaintStatusAction(cp entity.Complaint) dto.RowAction {
	a := dto.RowAction{
		Label:    cp.Status.Label(),
		Href:     "/complaints/" + cp.ID + "/process",
		Kind:     "primary",
		Disabled: cp.StatusActionDisabled(),
	}
	switch cp.NextAction() {
	case entity.ComplaintActionProcess:
		a.Label = "Process"
	case entity.ComplaintActionResolve:
		a.Label = "Resolve"
		a.Href = "/complaints/" + cp.ID + "/resolve"
	}
	if a.Label == "" {
		a.Label = "Unknown"
	}
	return a
}

func complaintTable(items []entity.Complaint) dto.Table {
	t := newTable("complaints", "Complaints")
	t.Headers = []string{"Ticket", "Customer", "Title", "Category", "Priority", "Status", "Assigned To", "Created"}
	for _, cp := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: cp.ID,
			Cells: []dto.Cell{
				{Text: cp.TicketNumber},
				{Text: cp.CustomerName, Href: "/customers/" + cp.CustomerID},
				{Text: cp.Title},
				{Text: entity.HumanizeEnum(cp.Category)},
				statusCell(string(cp.Priority)),
				statusCell(string(cp.Status)),
				{Text: cp.AssignedToName},
				{Text: cp.CreatedAt},
			},
			Actions: []dto.RowAction{
				complaintStatusAction(cp),
				editAction("complaints", cp.ID),
				deleteAction("complaints", cp.ID, "Complaint"),
			},
		})
	}
	return t
}

// ── Facturas y pagos ──────────────────────────────────────────────────────────

func invoiceTable(items []entity.Invoice) dto.Table {
	t := newTable("invoices", "Invoices")
	t.Headers = []string{"Invoice #", "Customer", "Type", "Billing Period", "Due Date", "Total", "Paid", "Remaining", "Status"}
	for _, inv := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: inv.ID,
			Cells: []dto.Cell{
				{Text: inv.InvoiceNumber, Href: "/public/invoice/" + inv.ID},
				{Text: inv.CustomerName, Href: "/customers/" + inv.CustomerID},
				{Text: entity.HumanizeEnum(inv.InvoiceType)},
				{Text: inv.BillingStartDate + " - " + inv.BillingEndDate},
				{Text: inv.DueDate},
				{Text: money.PKR(inv.TotalAmount)},
				{Text: money.PKR(inv.TotalPaid)},
				{Text: money.PKR(inv.RemainingAmount)},
				{Text: inv.StatusLabel(), Badge: badge(inv.Status)},
			},
			Actions: []dto.RowAction{
				{Label: "View", Href: "/public/invoice/" + inv.ID, Kind: "primary"},
				{Label: "PDF", Href: "/invoices/" + inv.ID + "/pdf", Kind: "neutral"},
				editAction("invoices", inv.ID),
				deleteAction("invoices", inv.ID, "Invoice"),
			},
		})
	}
	return t
}

func paymentTable(items []entity.Payment) dto.Table {
	t := newTable("payments", "Payments")
	t.Headers = []string{"Invoice #", "Customer", "Amount", "Date", "Method", "Transaction ID", "Received By", "Status"}
	for _, p := range items {
		actions := []dto.RowAction{
			{Label: "Verify", Href: "/payments/" + p.ID + "/verify", Kind: "primary", Disabled: !p.AwaitingVerification()},
		}
		if p.HasProof() {
			actions = append(actions, dto.RowAction{Label: "Proof", Href: "/payments/" + p.ID + "/proof", Kind: "neutral"})
		}
		actions = append(actions, editAction("payments", p.ID), deleteAction("payments", p.ID, "Payment"))
		t.Rows = append(t.Rows, dto.TableRow{
			ID: p.ID,
			Cells: []dto.Cell{
				{Text: p.InvoiceNumber},
				{Text: p.CustomerName},
				{Text: money.PKR(p.Amount)},
				{Text: p.PaymentDate},
				{Text: p.PaymentMethod},
				{Text: p.TransactionID},
				{Text: p.ReceivedByName},
				statusCell(p.Status),
			},
			Actions: actions,
		})
	}
	return t
}

// ── Tareas ────────────────────────────────────────────────────────────────────

func taskTable(items []entity.Task) dto.Table {
	t := newTable("tasks", "Tasks")
	t.Headers = []string{"Type", "Customer", "Assigned To", "Priority", "Due Date", "Status", "Notes"}
	for _, tk := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: tk.ID,
			Cells: []dto.Cell{
				{Text: entity.HumanizeEnum(tk.TaskType)},
				{Text: tk.CustomerName},
				{Text: strings.Join(tk.AssignedNames, ", ")},
				statusCell(string(tk.Priority)),
				{Text: tk.DueDate},
				statusCell(string(tk.Status)),
				{Text: tk.Notes},
			},
			Actions: []dto.RowAction{
				{Label: "Complete", Href: "/tasks/" + tk.ID + "/complete", Kind: "primary", Disabled: !tk.Status.IsOpen()},
				editAction("tasks", tk.ID),
				deleteAction("tasks", tk.ID, "Task"),
			},
		})
	}
	return t
}

func recoveryTaskTable(items []entity.RecoveryTask) dto.Table {
	t := newTable("recovery-tasks", "Recovery Tasks")
	t.Headers = []string{"Invoice #", "Customer", "Assigned To", "Status", "Notes", "Created"}
	for _, r := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: r.ID,
			Cells: []dto.Cell{
				{Text: r.InvoiceNumber, Href: "/public/invoice/" + r.InvoiceID},
				{Text: r.CustomerName},
				{Text: r.AssignedToName},
				statusCell(string(r.Status)),
				{Text: r.Notes},
				{Text: r.CreatedAt},
			},
			Actions: []dto.RowAction{
				{Label: "Complete", Href: "/recovery-tasks/" + r.ID + "/complete", Kind: "primary", Disabled: !r.Status.IsOpen()},
				editAction("recovery-tasks", r.ID),
				deleteAction("recovery-tasks", r.ID, "Recovery task"),
			},
		})
	}
	return t
}

// ── Inventario, empleados y catálogos ─────────────────────────────────────────

func inventoryTable(items []entity.InventoryItem) dto.Table {
	t := newTable("inventory", "Inventory")
	t.Headers = []string{"Type", "Model", "Serial Number", "MAC Address", "Quantity", "Unit Price", "Vendor", "Status"}
	for _, it := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: it.ID,
			Cells: []dto.Cell{
				{Text: it.ItemType},
				{Text: it.Model},
				{Text: it.SerialNumber},
				{Text: it.MACAddress},
				{Text: money.Format(decimalInt(it.Quantity))},
				{Text: money.PKR(it.UnitPrice)},
				{Text: firstNonEmpty(it.VendorName, it.Vendor)},
				activeCell(it.IsActive),
			},
			Actions: []dto.RowAction{
				editAction("inventory", it.ID),
				deleteAction("inventory", it.ID, "Item"),
			},
		})
	}
	return t
}

func employeeTable(items []entity.Employee) dto.Table {
	t := newTable("employees", "Employees")
	t.Headers = []string{"Name", "Username", "Email", "Contact", "Role", "Salary", "Status"}
	for _, e := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: e.ID,
			Cells: []dto.Cell{
				{Text: e.FullName()},
				{Text: e.Username},
				{Text: e.Email},
				{Text: e.ContactNumber},
				{Text: roleLabel(e.Role)},
				{Text: money.PKR(e.Salary)},
				activeCell(e.IsActive),
			},
			Actions: []dto.RowAction{
				editAction("employees", e.ID),
				deleteAction("employees", e.ID, "Employee"),
			},
		})
	}
	return t
}

func areaTable(items []entity.Area) dto.Table {
	t := newTable("areas", "Areas")
	t.Headers = []string{"Name", "Description"}
	for _, a := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID:      a.ID,
			Cells:   []dto.Cell{{Text: a.Name}, {Text: a.Description}},
			Actions: []dto.RowAction{editAction("areas", a.ID), deleteAction("areas", a.ID, "Area")},
		})
	}
	return t
}

func servicePlanTable(items []entity.ServicePlan) dto.Table {
	t := newTable("service-plans", "Service Plans")
	t.Headers = []string{"Name", "Price", "Bandwidth", "Description", "Status"}
	for _, sp := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: sp.ID,
			Cells: []dto.Cell{
				{Text: sp.Name},
				{Text: money.PKR(sp.Price)},
				{Text: sp.Bandwidth},
				{Text: sp.Description},
				activeCell(sp.IsActive),
			},
			Actions: []dto.RowAction{editAction("service-plans", sp.ID), deleteAction("service-plans", sp.ID, "Service plan")},
		})
	}
	return t
}

// ── Finanzas y proveedores ────────────────────────────────────────────────────

func expenseTable(items []entity.Expense) dto.Table {
	t := newTable("expenses", "Expenses")
	t.Headers = []string{"Date", "Type", "Amount", "Method", "Vendor / Payee", "Description"}
	for _, e := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: e.ID,
			Cells: []dto.Cell{
				{Text: e.ExpenseDate},
				{Text: entity.HumanizeEnum(e.ExpenseType)},
				{Text: money.PKR(e.Amount)},
				{Text: entity.HumanizeEnum(e.PaymentMethod)},
				{Text: e.VendorPayee},
				{Text: e.Description},
			},
			Actions: []dto.RowAction{editAction("expenses", e.ID), deleteAction("expenses", e.ID, "Expense")},
		})
	}
	return t
}

func ispPaymentTable(items []entity.ISPPayment) dto.Table {
	t := newTable("isp-payments", "ISP Payments")
	t.Headers = []string{"ISP", "Type", "Period", "Amount", "Date", "Method", "Bank Account", "Status"}
	for _, p := range items {
		var actions []dto.RowAction
		if p.HasProof() {
			actions = append(actions, dto.RowAction{Label: "Proof", Href: "/isp-payments/" + p.ID + "/proof", Kind: "neutral"})
		}
		actions = append(actions, editAction("isp-payments", p.ID), deleteAction("isp-payments", p.ID, "ISP payment"))
		t.Rows = append(t.Rows, dto.TableRow{
			ID: p.ID,
			Cells: []dto.Cell{
				{Text: p.ISPName},
				{Text: entity.HumanizeEnum(p.PaymentType)},
				{Text: p.BillingPeriod},
				{Text: money.PKR(p.Amount)},
				{Text: p.PaymentDate},
				{Text: entity.HumanizeEnum(p.PaymentMethod)},
				{Text: p.BankAccountDetails},
				statusCell(p.Status),
			},
			Actions: actions,
		})
	}
	return t
}

func vendorTable(items []entity.Vendor) dto.Table {
	t := newTable("vendors", "Vendors")
	t.Headers = []string{"Name", "Phone", "Email", "CNIC", "Documents", "Status"}
	for _, v := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: v.ID,
			Cells: []dto.Cell{
				{Text: v.Name},
				{Text: v.Phone},
				{Text: v.Email},
				{Text: v.CNIC},
				{Text: strconv.Itoa(v.DocumentCount()) + "/3"},
				activeCell(v.IsActive),
			},
			Actions: []dto.RowAction{editAction("vendors", v.ID), deleteAction("vendors", v.ID, "Vendor")},
		})
	}
	return t
}

// ── Red, bancos y auditoría ───────────────────────────────────────────────────

func subZoneTable(items []entity.SubZone) dto.Table {
	t := newTable("sub-zones", "Sub Zones")
	t.Headers = []string{"Name", "Area", "Description", "Status"}
	for _, z := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID:      z.ID,
			Cells:   []dto.Cell{{Text: z.Name}, {Text: z.AreaName}, {Text: z.Description}, activeCell(z.IsActive)},
			Actions: []dto.RowAction{editAction("sub-zones", z.ID), deleteAction("sub-zones", z.ID, "Sub zone")},
		})
	}
	return t
}

func bankAccountTable(items []entity.BankAccount) dto.Table {
	t := newTable("bank-accounts", "Bank Accounts")
	t.Headers = []string{"Bank", "Account Title", "Account Number", "IBAN", "Branch Code", "Status"}
	for _, b := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: b.ID,
			Cells: []dto.Cell{
				{Text: b.BankName},
				{Text: b.AccountTitle},
				{Text: b.AccountNumber},
				{Text: b.IBAN},
				{Text: b.BranchCode},
				activeCell(b.IsActive),
			},
			Actions: []dto.RowAction{editAction("bank-accounts", b.ID), deleteAction("bank-accounts", b.ID, "Bank account")},
		})
	}
	return t
}

func ispTable(items []entity.ISP) dto.Table {
	t := newTable("isps", "ISPs")
	t.Headers = []string{"Name", "Contact Person", "Email", "Phone", "Address", "Status"}
	for _, i := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: i.ID,
			Cells: []dto.Cell{
				{Text: i.Name},
				{Text: i.ContactPerson},
				{Text: i.Email},
				{Text: i.Phone},
				{Text: i.Address},
				activeCell(i.IsActive),
			},
			Actions: []dto.RowAction{editAction("isps", i.ID), deleteAction("isps", i.ID, "ISP")},
		})
	}
	return t
}

// auditLogTable solo lectura: sin alta ni acciones por fila.
func auditLogTable(items []entity.AuditLog) dto.Table {
	t := newTable("logs", "Logs")
	t.CreateHref = ""
	t.Headers = []string{"Time", "User", "Action", "Table", "Record", "IP Address"}
	for _, l := range items {
		t.Rows = append(t.Rows, dto.TableRow{
			ID: l.ID,
			Cells: []dto.Cell{
				{Text: firstNonEmpty(l.Timestamp, l.CreatedAt)},
				{Text: firstNonEmpty(l.UserName, l.UserID)},
				{Text: entity.HumanizeEnum(l.Action)},
				{Text: l.TableName},
				{Text: l.RecordID},
				{Text: l.IPAddress},
			},
		})
	}
	return t
}

func roleLabel(role string) string {
	for _, r := range entity.EmployeeRoles {
		if r[0] == role {
			return r[1]
		}
	}
	return entity.HumanizeEnum(role)
}

func decimalInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
