package singleton

import "fmt"

// AuditLog is the shared journal. One instance is created by the
// composition root and passed to each client that writes to it.
type AuditLog struct {
	entries []string
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (a *AuditLog) Record(source, format string, args ...any) {
	a.entries = append(a.entries, fmt.Sprintf("[%s] %s", source, fmt.Sprintf(format, args...)))
}

// Entries returns a copy of the journal in recording order.
func (a *AuditLog) Entries() []string {
	out := make([]string, len(a.entries))
	copy(out, a.entries)
	return out
}

type OrderService struct {
	audit *AuditLog
}

func NewOrderService(audit *AuditLog) *OrderService {
	return &OrderService{audit: audit}
}

func (s *OrderService) PlaceOrder(id string) {
	s.audit.Record("orders", "placed order %s", id)
}

type PaymentService struct {
	audit *AuditLog
}

func NewPaymentService(audit *AuditLog) *PaymentService {
	return &PaymentService{audit: audit}
}

func (s *PaymentService) Charge(id string, cents int) {
	s.audit.Record("payments", "charged %d cents for order %s", cents, id)
}
