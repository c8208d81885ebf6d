package dto

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// Panel sección de dashboard lista para renderizar.
type Panel struct {
	Key    string
	Title  string
	Error  string
	KPIs   []KPI
	Charts []BarChart
	Tables []Table
	Notes  []string
}

// KPI tarjeta con un valor.
type KPI struct {
	Label string
	Value string
}

// BarChart gráfico de barras horizontal en CSS.
type BarChart struct {
	Title string
	Bars  []Bar
}

// Bar barra; Percent es relativo al máximo del gráfico (0-100).
type Bar struct {
	Label   string
	Value   string
	Percent int
}

// NewBarChart escala las barras contra el valor máximo.
func NewBarChart(title string, labels []string, values []decimal.Decimal, format func(decimal.Decimal) string) BarChart {
	top := decimal.Zero
	for _, v := range values {
		if v.GreaterThan(top) {
			top = v
		}
	}
	chart := BarChart{Title: title, Bars: make([]Bar, 0, len(values))}
	for i, v := range values {
		pct := 0
		if top.IsPositive() && v.IsPositive() {
			pct = int(v.Div(top).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}
		chart.Bars = append(chart.Bars, Bar{Label: labels[i], Value: format(v), Percent: pct})
	}
	return chart
}

// ExecutivePanel /dashboard/executive-summary.
func ExecutivePanel(s *entity.ExecutiveSummary) Panel {
	p := Panel{
		Key:   "executive",
		Title: "Executive Summary",
		KPIs: []KPI{
			{"Total Active Customers", money.Format(decimal.NewFromInt(int64(s.TotalActiveCustomers)))},
			{"Monthly Recurring Revenue", money.PKR(s.MonthlyRecurringRevenue)},
			{"Active Complaints", strconv.Itoa(s.ActiveComplaints)},
			{"Outstanding Payments", money.PKR(s.OutstandingPayments)},
		},
	}
	if len(s.CustomerGrowthData) > 0 {
		labels := make([]string, len(s.CustomerGrowthData))
		values := make([]decimal.Decimal, len(s.CustomerGrowthData))
		for i, g := range s.CustomerGrowthData {
			labels[i] = g.Month
			values[i] = decimal.NewFromInt(int64(g.Customers))
		}
		p.Charts = append(p.Charts, NewBarChart("Customer Growth", labels, values, money.Format))
	}
	if len(s.ServicePlanData) > 0 {
		labels := make([]string, len(s.ServicePlanData))
		values := make([]decimal.Decimal, len(s.ServicePlanData))
		for i, d := range s.ServicePlanData {
			labels[i] = d.Name
			values[i] = d.Value
		}
		p.Charts = append(p.Charts, NewBarChart("Service Plan Distribution", labels, values, money.Format))
	}
	return p
}

// FinancialPanel /dashboard/financial-analytics.
func FinancialPanel(f *entity.FinancialAnalytics) Panel {
	p := Panel{
		Key:   "financial",
		Title: "Financial Analytics",
		KPIs: []KPI{
			{"Total Revenue", money.PKR(f.TotalRevenue)},
			{"Avg Revenue Per User", money.PKR(f.AvgRevenuePerUser)},
			{"Operating Expenses", money.PKR(f.OperatingExpenses)},
			{"Net Profit Margin", money.Percent(f.NetProfitMargin)},
		},
	}
	if len(f.MonthlyRevenue) > 0 {
		labels := make([]string, len(f.MonthlyRevenue))
		values := make([]decimal.Decimal, len(f.MonthlyRevenue))
		for i, r := range f.MonthlyRevenue {
			labels[i] = r.Month
			values[i] = r.Revenue
		}
		p.Charts = append(p.Charts, NewBarChart("Monthly Revenue", labels, values, money.PKR))
	}
	if len(f.RevenueByPlan) > 0 {
		labels := make([]string, len(f.RevenueByPlan))
		values := make([]decimal.Decimal, len(f.RevenueByPlan))
		for i, r := range f.RevenueByPlan {
			labels[i] = r.Plan
			values[i] = r.Revenue
		}
		p.Charts = append(p.Charts, NewBarChart("Revenue by Plan", labels, values, money.PKR))
	}
	return p
}

// ServicePanel /dashboard/service-support.
func ServicePanel(m *entity.ServiceSupportMetrics) Panel {
	p := Panel{
		Key:   "service",
		Title: "Service Support",
		KPIs: []KPI{
			{"Average Resolution Time", m.AverageResolutionTime.StringFixed(1) + " hrs"},
			{"Customer Satisfaction", money.Percent(m.CustomerSatisfactionRate)},
			{"First Contact Resolution", money.Percent(m.FirstContactResolutionRate)},
			{"Support Ticket Volume", strconv.Itoa(m.SupportTicketVolume)},
		},
		Notes: m.RemarksSummary,
	}
	if len(m.StatusDistribution) > 0 {
		keys := sortedKeys(m.StatusDistribution)
		labels := make([]string, len(keys))
		values := make([]decimal.Decimal, len(keys))
		for i, k := range keys {
			labels[i] = entity.HumanizeEnum(k)
			values[i] = decimal.NewFromInt(int64(m.StatusDistribution[k]))
		}
		p.Charts = append(p.Charts, NewBarChart("Complaint Status Distribution", labels, values, money.Format))
	}
	return p
}

// RawPanel arma un panel a partir del JSON sin tipar de las secciones restantes:
// escalares como KPIs, mapas de números como gráficos y arreglos de objetos como tablas.
func RawPanel(key, title string, raw map[string]any) Panel {
	p := Panel{Key: key, Title: title}
	for _, k := range sortedKeys(raw) {
		label := entity.HumanizeEnum(k)
		switch v := raw[k].(type) {
		case nil:
		case map[string]any:
			if chart, ok := numericChart(label, v); ok {
				p.Charts = append(p.Charts, chart)
				continue
			}
			for _, sk := range sortedKeys(v) {
				if s, ok := scalarText(v[sk]); ok {
					p.KPIs = append(p.KPIs, KPI{Label: label + " · " + entity.HumanizeEnum(sk), Value: s})
				}
			}
		case []any:
			if t, ok := objectTable(label, v); ok {
				p.Tables = append(p.Tables, t)
				continue
			}
			for _, item := range v {
				if s, ok := scalarText(item); ok {
					p.Notes = append(p.Notes, s)
				}
			}
		default:
			if s, ok := scalarText(v); ok {
				p.KPIs = append(p.KPIs, KPI{Label: label, Value: s})
			}
		}
	}
	return p
}

func numericChart(title string, m map[string]any) (BarChart, bool) {
	if len(m) == 0 {
		return BarChart{}, false
	}
	keys := sortedKeys(m)
	labels := make([]string, len(keys))
	values := make([]decimal.Decimal, len(keys))
	for i, k := range keys {
		f, ok := m[k].(float64)
		if !ok {
			return BarChart{}, false
		}
		labels[i] = entity.HumanizeEnum(k)
		values[i] = decimal.NewFromFloat(f)
	}
	return NewBarChart(title, labels, values, money.Format), true
}

func objectTable(title string, items []any) (Table, bool) {
	if len(items) == 0 {
		return Table{Title: title, Empty: "No data"}, true
	}
	cols := map[string]bool{}
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			return Table{}, false
		}
		for k := range obj {
			cols[k] = true
		}
	}
	keys := sortedKeys(cols)
	t := Table{Title: title, Headers: make([]string, len(keys))}
	for i, k := range keys {
		t.Headers[i] = entity.HumanizeEnum(k)
	}
	for _, it := range items {
		obj := it.(map[string]any)
		row := TableRow{Cells: make([]Cell, len(keys))}
		for i, k := range keys {
			s, _ := scalarText(obj[k])
			row.Cells[i] = Cell{Text: s}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, true
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case bool:
		if x {
			return "Yes", true
		}
		return "No", true
	case float64:
		return money.Format(decimal.NewFromFloat(x)), true
	case int:
		return strconv.Itoa(x), true
	default:
		if _, isMap := v.(map[string]any); isMap {
			return "", false
		}
		if _, isSlice := v.([]any); isSlice {
			return "", false
		}
		return fmt.Sprint(v), true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
