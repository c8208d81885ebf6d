package dto_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

func TestValidate_CampoRequeridoUsaNombreDelFormulario(t *testing.T) {
	err := dto.Validate(&dto.AreaForm{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "Name is required", verr.Message)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidate_PasswordsNoCoinciden(t *testing.T) {
	f := &dto.EmployeeForm{
		FirstName: "Ali", LastName: "Raza", ContactNumber: "0300", CNIC: "35202",
		Username: "ali", Password: "secret1", ConfirmPassword: "secret2", Role: "technician", Salary: "50000",
	}
	err := dto.Validate(f)
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())

	f.ConfirmPassword = "secret1"
	assert.NoError(t, dto.Validate(f))
}

func TestValidate_PasswordObligatoriaSoloAlCrear(t *testing.T) {
	f := &dto.EmployeeForm{
		FirstName: "Ali", LastName: "Raza", ContactNumber: "0300", CNIC: "35202",
		Username: "ali", Role: "technician", Salary: "50000",
	}
	assert.EqualError(t, dto.Validate(f), "Password is required")

	f.Editing = true
	assert.NoError(t, dto.Validate(f))
}

func TestValidate_TaskAssignedToAplanado(t *testing.T) {
	f := &dto.TaskForm{TaskType: "installation", Priority: "high", DueDate: "2024-05-01", Status: "pending"}
	assert.EqualError(t, dto.Validate(f), "Assigned To is required")

	f.AssignedTo = dto.FlattenMulti([]string{"e1", " e2 ", ""})
	require.NoError(t, dto.Validate(f))
	assert.Equal(t, "e1,e2", f.AssignedTo)
}

func TestFlattenMultiYSplit(t *testing.T) {
	assert.Equal(t, "a,b,c", dto.FlattenMulti([]string{"a", "b,c"}))
	assert.Equal(t, "", dto.FlattenMulti(nil))
	assert.Equal(t, []string{"a", "b"}, dto.SplitMulti("a, b"))
	assert.Equal(t, []string{}, dto.SplitMulti(" "))
}

func TestPublicPaymentForm_ComprobanteObligatorio(t *testing.T) {
	f := &dto.PublicPaymentForm{Amount: "1500", PaymentMethod: entity.MethodCash, PaymentDate: "2024-05-01"}
	assert.EqualError(t, dto.Validate(f), dto.MsgProofRequired)

	f.Proof = &repository.File{Field: "payment_proof", Name: "p.png", Data: []byte("x")}
	assert.NoError(t, dto.Validate(f))

	f.PaymentMethod = entity.MethodBankTransfer
	assert.EqualError(t, dto.Validate(f), dto.MsgBankAccountRequired)

	f.BankAccountID = "b1"
	assert.NoError(t, dto.Validate(f))
}

func TestPublicPaymentForm_Multipart(t *testing.T) {
	f := &dto.PublicPaymentForm{
		Amount: "1500", PaymentMethod: entity.MethodJazzCash, PaymentDate: "2024-05-01",
		Proof: &repository.File{Field: "payment_proof", Name: "p.png", Data: []byte("x")},
	}
	m := f.Multipart("inv-1")
	assert.Equal(t, "inv-1", m.Fields["invoice_id"])
	assert.NotContains(t, m.Fields, "bank_account_id")
	require.Len(t, m.Files, 1)
	assert.Equal(t, "payment_proof", m.Files[0].Field)
}

func TestTaskForm_PayloadAssignedToComoArreglo(t *testing.T) {
	f := &dto.TaskForm{TaskType: "maintenance", AssignedTo: "e1,e2", Priority: "low", DueDate: "d", Status: "pending"}
	p := f.Payload()
	assert.Contains(t, toJSON(t, p), `"assigned_to":["e1","e2"]`)
}

func TestOptions_ListaVaciaSinOpciones(t *testing.T) {
	refs := &dto.ReferenceLists{}
	assert.Empty(t, refs.AreaOptions(""))
	assert.Empty(t, refs.ServicePlanOptions(""))

	refs.Areas = []entity.Area{{ID: "a1", Name: "Gulberg"}, {ID: "a2", Name: "DHA"}}
	opts := refs.AreaOptions("a2")
	require.Len(t, opts, 2)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[1].Selected)
}

func TestTable_Records(t *testing.T) {
	tbl := dto.Table{
		Headers: []string{"Name", "Status"},
		Rows: []dto.TableRow{
			{Cells: []dto.Cell{{Text: "Ali"}, {Text: "Active", Badge: "green"}}},
		},
	}
	assert.Equal(t, [][]string{{"Name", "Status"}, {"Ali", "Active"}}, tbl.Records())
}

func TestDialogView_ConfirmDisabled(t *testing.T) {
	d := dto.DialogView{NotesRequired: true, Notes: "   "}
	assert.True(t, d.ConfirmDisabled())
	d.Notes = "cable replaced"
	assert.False(t, d.ConfirmDisabled())
	assert.False(t, dto.DialogView{}.ConfirmDisabled())
}

func TestPublicInvoiceView_ShowForm(t *testing.T) {
	pending := entity.Payment{Status: entity.PaymentPending}
	cases := []struct {
		name      string
		remaining int64
		payments  []entity.Payment
		state     dto.SubmissionState
		show      bool
	}{
		{"saldo pendiente", 1500, nil, dto.StateIdle, true},
		{"pagada", 0, nil, dto.StateIdle, false},
		{"pago en verificación", 1500, []entity.Payment{pending}, dto.StateIdle, false},
		{"recién enviado", 1500, nil, dto.StateSuccess, false},
		{"error en el envío", 1500, nil, dto.StateError, true},
	}
	for _, tc := range cases {
		inv := &entity.Invoice{RemainingAmount: decimal.NewFromInt(tc.remaining), Payments: tc.payments}
		v := dto.PublicInvoiceView{Invoice: inv, State: tc.state}
		assert.Equal(t, tc.show, v.ShowForm(), tc.name)
	}
}

func TestSubmissionState_Next(t *testing.T) {
	assert.Equal(t, dto.StateSubmitting, dto.StateIdle.Next(nil))
	assert.Equal(t, dto.StateSuccess, dto.StateSubmitting.Next(nil))
	assert.Equal(t, dto.StateError, dto.StateSubmitting.Next(errors.New("boom")))
	assert.Equal(t, dto.StateIdle, dto.StateError.Next(nil))
	assert.Equal(t, dto.StateSuccess, dto.StateSuccess.Next(nil))
}

func TestRawPanel(t *testing.T) {
	raw := map[string]any{
		"total_items":       float64(120),
		"low_stock_alerts":  []any{map[string]any{"model": "TP-Link", "quantity": float64(2)}},
		"items_by_type":     map[string]any{"router": float64(80), "switch": float64(40)},
		"recommendations":   []any{"Reorder routers"},
		"last_updated_user": nil,
	}
	p := dto.RawPanel("inventory", "Inventory", raw)

	require.Len(t, p.KPIs, 1)
	assert.Equal(t, dto.KPI{Label: "Total Items", Value: "120"}, p.KPIs[0])
	require.Len(t, p.Charts, 1)
	assert.Equal(t, 100, p.Charts[0].Bars[0].Percent)
	assert.Equal(t, 50, p.Charts[0].Bars[1].Percent)
	require.Len(t, p.Tables, 1)
	assert.Equal(t, []string{"Model", "Quantity"}, p.Tables[0].Headers)
	assert.Len(t, p.Tables[0].Rows, 1)
	assert.Equal(t, []string{"Reorder routers"}, p.Notes)
}

func TestExecutivePanel(t *testing.T) {
	p := dto.ExecutivePanel(&entity.ExecutiveSummary{
		TotalActiveCustomers:    1250,
		MonthlyRecurringRevenue: decimal.NewFromInt(2500000),
		CustomerGrowthData:      []entity.GrowthPoint{{Month: "Jan", Customers: 10}, {Month: "Feb", Customers: 20}},
	})
	assert.Equal(t, "1,250", p.KPIs[0].Value)
	assert.Equal(t, "PKR 2,500,000", p.KPIs[1].Value)
	require.Len(t, p.Charts, 1)
	assert.Equal(t, 50, p.Charts[0].Bars[0].Percent)
}

func TestExpenseForm_CuentaSegunMedioDePago(t *testing.T) {
	f := &dto.ExpenseForm{ExpenseType: "utilities", Amount: "4500", ExpenseDate: "2026-10-01", PaymentMethod: "cash"}
	assert.NoError(t, dto.Validate(f))

	for _, method := range []string{"bank_transfer", "online"} {
		f.PaymentMethod = method
		assert.EqualError(t, dto.Validate(f), dto.MsgBankAccountRequired, method)
	}

	f.BankAccountID = "b1"
	assert.NoError(t, dto.Validate(f))
}

func TestISPPaymentForm_ConsumoNecesitaGB(t *testing.T) {
	f := &dto.ISPPaymentForm{
		ISPID: "i1", PaymentType: "bandwidth_usage", Amount: "90000", PaymentDate: "2026-10-01",
		BillingPeriod: "2026-09", PaymentMethod: "cash",
	}
	err := dto.Validate(f)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bandwidth_usage_gb", ve.Field)

	f.BandwidthUsageGB = "1200"
	assert.NoError(t, dto.Validate(f))
}

func TestISPPaymentForm_MultipartConComprobante(t *testing.T) {
	f := &dto.ISPPaymentForm{
		ISPID: "i1", PaymentType: "monthly_subscription", Amount: "250000", PaymentDate: "2026-10-01",
		BillingPeriod: "2026-10", PaymentMethod: "cash",
		Proof: &repository.File{Field: "payment_proof", Name: "p.png", Data: []byte("x")},
	}
	m, ok := f.Payload().(*repository.MultipartForm)
	require.True(t, ok)
	assert.Equal(t, "i1", m.Fields["isp_id"])
	assert.NotContains(t, m.Fields, "rate_per_gb")
	require.Len(t, m.Files, 1)
}
