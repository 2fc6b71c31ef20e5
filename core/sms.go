package core

// CodeSender delivers login verification codes. Fire and forget.
type CodeSender interface {
	SendCode(phone string)
}
