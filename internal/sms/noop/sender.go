// Package noop logs SMS sends instead of delivering them. Used in
// development and whenever no gateway is configured.
package noop

import (
	"context"
	"log"

	"github.com/Boldmaa4421/raffle-app/internal/port"
)

type sender struct{}

// NewSender creates an SmsSender that logs and reports success.
func NewSender() port.SmsSender {
	return &sender{}
}

func (s *sender) Send(ctx context.Context, toE164, text string) port.SendResult {
	log.Printf("noopSender.Send: to=%s len=%d", toE164, len(text))
	return port.SendResult{OK: true, StatusCode: 200}
}
