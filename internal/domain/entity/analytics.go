package entity

import "github.com/shopspring/decimal"

// Proyecciones de solo lectura de /dashboard/*. No tienen ciclo de vida propio.

// ExecutiveSummary GET /dashboard/executive-summary.
type ExecutiveSummary struct {
	TotalActiveCustomers    int               `json:"total_active_customers"`
	MonthlyRecurringRevenue decimal.Decimal   `json:"monthly_recurring_revenue"`
	ActiveComplaints        int               `json:"active_complaints"`
	OutstandingPayments     decimal.Decimal   `json:"outstanding_payments"`
	CustomerGrowthData      []GrowthPoint     `json:"customer_growth_data"`
	ServicePlanData         []NamedValuePoint `json:"service_plan_data"`
}

// GrowthPoint clientes por mes.
type GrowthPoint struct {
	Month     string `json:"month"`
	Customers int    `json:"customers"`
}

// NamedValuePoint porción de una torta.
type NamedValuePoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// FinancialAnalytics GET /dashboard/financial-analytics.
type FinancialAnalytics struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgRevenuePerUser decimal.Decimal `json:"avg_revenue_per_user"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	NetProfitMargin   decimal.Decimal `json:"net_profit_margin"`
	MonthlyRevenue    []RevenuePoint  `json:"monthly_revenue"`
	RevenueByPlan     []PlanRevenue   `json:"revenue_by_plan"`
}

// RevenuePoint ingreso de un mes.
type RevenuePoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PlanRevenue ingreso por plan.
type PlanRevenue struct {
	Plan    string          `json:"plan"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ServiceSupportMetrics GET /dashboard/service-support. El backend puede devolver
// {"error": "..."} con 200; Error lo captura.
type ServiceSupportMetrics struct {
	StatusDistribution         map[string]int  `json:"status_distribution"`
	AverageResolutionTime      decimal.Decimal `json:"average_resolution_time"`
	CustomerSatisfactionRate   decimal.Decimal `json:"customer_satisfaction_rate"`
	FirstContactResolutionRate decimal.Decimal `json:"first_contact_resolution_rate"`
	SupportTicketVolume        int             `json:"support_ticket_volume"`
	RemarksSummary             []string        `json:"remarks_summary"`
	Error                      string          `json:"error,omitempty"`
}
