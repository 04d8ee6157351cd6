package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SimulatedPayments approves every charge.
type SimulatedPayments struct {
	log logrus.FieldLogger
}

func NewSimulatedPayments(log logrus.FieldLogger) *SimulatedPayments {
	return &SimulatedPayments{log: log.WithField("component", "payments")}
}

func (p *SimulatedPayments) Charge(_ context.Context, method PaymentMethod, amount float64) (string, error) {
	txID := "sim_" + uuid.NewString()
	p.log.WithFields(logrus.Fields{
		"method": method,
		"amount": amount,
		"tx_id":  txID,
	}).Info("payment approved (test mode)")
	return txID, nil
}
