package stock

import "fmt"

// StockOutEmailData datos para el correo de salida de stock.
type StockOutEmailData struct {
	ItemName    string
	VariantName string // vacío si el artículo no maneja variantes
	Location    string
	Quantity    int64
	OnHand      int64 // stock después del asiento
	Reason      string
	CreatedBy   string
	EventName   string // vacío si la salida no se atribuye a un evento
}

// BuildStockOutEmail arma asunto y cuerpo del correo de salida de stock.
// El formato es texto plano, una línea por campo.
func BuildStockOutEmail(d StockOutEmailData) (subject, body string) {
	subject = fmt.Sprintf("Stock out recorded: %s", d.ItemName)

	variantLine := ""
	if d.VariantName != "" {
		variantLine = fmt.Sprintf("Size: %s\n", d.VariantName)
	}

	body = fmt.Sprintf(
		"Stock out recorded\n\n"+
			"Item: %s\n"+
			"%s"+
			"Location: %s\n"+
			"Quantity: %d\n"+
			"New on hand: %d\n"+
			"Reason: %s\n"+
			"Created by: %s\n",
		d.ItemName, variantLine, d.Location, d.Quantity, d.OnHand, d.Reason, d.CreatedBy,
	)
	if d.EventName != "" {
		body += fmt.Sprintf("Event: %s\n", d.EventName)
	}
	return subject, body
}

// LowStockEmailData datos para el correo de alerta de stock bajo.
type LowStockEmailData struct {
	ItemName    string
	VariantName string
	Location    string
	OnHand      int64
	Threshold   int64
}

// BuildLowStockEmail arma asunto y cuerpo del correo de alerta de stock bajo.
func BuildLowStockEmail(d LowStockEmailData) (subject, body string) {
	subject = fmt.Sprintf("Low stock alert: %s at %s", d.ItemName, d.Location)

	variantLine := ""
	if d.VariantName != "" {
		variantLine = fmt.Sprintf("Size: %s\n", d.VariantName)
	}

	body = fmt.Sprintf(
		"Low stock alert\n\n"+
			"Item: %s\n"+
			"%s"+
			"Location: %s\n"+
			"On hand: %d\n"+
			"Threshold: %d\n",
		d.ItemName, variantLine, d.Location, d.OnHand, d.Threshold,
	)
	return subject, body
}
