package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer cliente del ISP tal como lo devuelve GET /customers/list y /customers/:id.
type Customer struct {
	ID                  string          `json:"id"`
	InternetID          string          `json:"internet_id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Email               string          `json:"email"`
	Phone1              string          `json:"phone_1"`
	Phone2              string          `json:"phone_2,omitempty"`
	CNIC                string          `json:"cnic"`
	AreaID              string          `json:"area_id"`
	AreaName            string          `json:"area_name,omitempty"`
	ServicePlanID       string          `json:"service_plan_id"`
	ServicePlanName     string          `json:"service_plan_name,omitempty"`
	ISPID               string          `json:"isp_id"`
	ISPName             string          `json:"isp_name,omitempty"`
	InstallationAddress string          `json:"installation_address"`
	InstallationDate    string          `json:"installation_date"`
	ConnectionType      string          `json:"connection_type"`
	InternetConnType    string          `json:"internet_connection_type,omitempty"`
	GPSCoordinates      string          `json:"gps_coordinates,omitempty"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	RechargeDate        string          `json:"recharge_date,omitempty"`
	CNICFrontImage      string          `json:"cnic_front_image,omitempty"`
	CNICBackImage       string          `json:"cnic_back_image,omitempty"`
	AgreementDocument   string          `json:"agreement_document,omitempty"`
	IsActive            bool            `json:"is_active"`
}

// ConnectionTypes opciones de connection_type.
var ConnectionTypes = [][2]string{{"internet", "Internet"}, {"tv_cable", "TV Cable"}, {"both", "Both"}}

// InternetConnectionTypes opciones de internet_connection_type.
var InternetConnectionTypes = [][2]string{{"wire", "Wire"}, {"wireless", "Wireless"}}

// FullName nombre y apellido.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasCNICImages indica si hay al menos una imagen de CNIC en el servidor.
func (c Customer) HasCNICImages() bool {
	return c.CNICFrontImage != "" || c.CNICBackImage != ""
}
