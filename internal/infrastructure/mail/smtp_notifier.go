// Package mail implementa el envío de notificaciones por SMTP.
package mail

import (
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ stock.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía correos en texto plano vía SMTP (gomail). Con puerto 465
// usa SSL implícito; en otros puertos gomail negocia STARTTLS.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPNotifier construye el notificador a partir de la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	return &SMTPNotifier{cfg: cfg, dialer: d}
}

// SendStockOut notifica una salida de stock a los destinatarios configurados.
func (n *SMTPNotifier) SendStockOut(subject, body string) error {
	return n.send(n.cfg.StockOutRecipients, subject, body)
}

// SendLowStock notifica una alerta de stock bajo a los destinatarios configurados.
func (n *SMTPNotifier) SendLowStock(subject, body string) error {
	return n.send(n.cfg.LowStockRecipients, subject, body)
}

func (n *SMTPNotifier) send(to []string, subject, body string) error {
	if n.cfg.User == "" || n.cfg.Password == "" {
		return fmt.Errorf("smtp: credenciales no configuradas")
	}
	if len(to) == 0 {
		return fmt.Errorf("smtp: sin destinatarios configurados")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar correo: %w", err)
	}
	return nil
}
