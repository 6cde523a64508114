package principles

import (
	"fmt"

	"ooctl/internal/behavior"
)

// Notifier is the abstraction AlertService depends on.
type Notifier interface {
	Notify(to, message string) (string, error)
}

type EmailNotifier struct{}

func (EmailNotifier) Notify(to, message string) (string, error) {
	return fmt.Sprintf("email to %s: %s", to, message), nil
}

type SMSNotifier struct{}

func (SMSNotifier) Notify(to, message string) (string, error) {
	if len(message) > 160 {
		return "", fmt.Errorf("sms to %s: message longer than 160 characters", to)
	}
	return fmt.Sprintf("sms to %s: %s", to, message), nil
}

// AlertService is the high-level policy. It never names a concrete
// notifier; the caller decides.
type AlertService struct {
	notifier behavior.Slot[Notifier]
}

func NewAlertService(n Notifier) *AlertService {
	a := &AlertService{notifier: behavior.Named[Notifier]("notifier")}
	a.notifier.Set(n)
	return a
}

// SetNotifier swaps the delivery channel. Nil detaches it.
func (a *AlertService) SetNotifier(n Notifier) {
	a.notifier.Set(n)
}

func (a *AlertService) Alert(to, message string) (string, error) {
	n, err := a.notifier.Get()
	if err != nil {
		return "", fmt.Errorf("alert %s: %w", to, err)
	}
	return n.Notify(to, message)
}
