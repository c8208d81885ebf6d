package entity

import "strings"

// HumanizeEnum convierte valores snake_case del backend en etiquetas ("partially_paid" -> "Partially Paid").
func HumanizeEnum(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
