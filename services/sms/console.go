// Package smssvc delivers login verification codes.
package smssvc

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/trezcool/happyclass/core"
)

// SentCode is a verification code handed to the console sender.
type SentCode struct {
	Phone string // masked
	Code  string
}

type ConsoleService struct {
	logger        core.Logger
	appName       string
	disableOutput bool

	mu   sync.Mutex
	rnd  *rand.Rand
	sent []SentCode
}

var _ core.CodeSender = (*ConsoleService)(nil)

// NewConsoleService logs the codes instead of texting them.
func NewConsoleService(logger core.Logger, conf *core.Config, rnd *rand.Rand) *ConsoleService {
	return &ConsoleService{
		logger:        logger,
		appName:       conf.AppName,
		disableOutput: conf.TestMode,
		rnd:           rnd,
	}
}

func (svc *ConsoleService) SendCode(phone string) {
	svc.mu.Lock()
	code := fmt.Sprintf("%06d", svc.rnd.Intn(1000000))
	msg := SentCode{Phone: core.MaskPhone(phone), Code: code}
	svc.sent = append(svc.sent, msg)
	svc.mu.Unlock()

	if !svc.disableOutput {
		svc.logger.Info(fmt.Sprintf("[%s] 验证码 %s 已发送至 %s", svc.appName, msg.Code, msg.Phone))
	}
}

// Sent returns the codes sent so far, oldest first.
func (svc *ConsoleService) Sent() []SentCode {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]SentCode(nil), svc.sent...)
}
