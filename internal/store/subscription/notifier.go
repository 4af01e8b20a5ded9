package subscription

import (
	"io"
	"log"
	"time"

	"github.com/guonaihong/gout"
)

const notifyTimeout = 10 * time.Second

// Notifier forwards new subscribers to the external form endpoint. The call
// is fire-and-forget: it returns immediately, and failures are logged and
// never surfaced to the caller.
type Notifier struct {
	endpoint string
	logger   *log.Logger
}

func NewNotifier(endpoint string, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Notifier{endpoint: endpoint, logger: logger}
}

// Notify posts the subscriber email to the configured endpoint without
// blocking the caller. A blank endpoint disables forwarding.
func (n *Notifier) Notify(email string) {
	if n.endpoint == "" {
		return
	}
	go n.send(email)
}

func (n *Notifier) send(email string) {
	err := gout.POST(n.endpoint).
		SetTimeout(notifyTimeout).
		SetForm(gout.H{
			"email":    email,
			"_subject": "Nuevo Suscriptor Lobitos Ponchos",
			"_captcha": "false",
		}).
		Do()
	if err != nil {
		n.logger.Printf("subscription: forward to %s failed: %v", n.endpoint, err)
	}
}
