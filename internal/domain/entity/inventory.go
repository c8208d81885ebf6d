package entity

import "github.com/shopspring/decimal"

// InventoryItem equipo o material en bodega (routers, cable, ONTs...).
type InventoryItem struct {
	ID           string          `json:"id"`
	ItemType     string          `json:"item_type"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number,omitempty"`
	MACAddress   string          `json:"mac_address,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Vendor       string          `json:"vendor,omitempty"`
	VendorName   string          `json:"vendor_name,omitempty"`
	Status       string          `json:"status,omitempty"`
	IsActive     bool            `json:"is_active"`
}

// InventoryItemTypes tipos de ítem del formulario.
var InventoryItemTypes = []string{
	"Router", "Switch", "Dish", "Splitters", "Node", "STB",
	"Fiber Cable", "Ethernet Cable", "Patch Cord", "Splicing Box", "Other",
}
