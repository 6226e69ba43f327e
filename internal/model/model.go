package model

import "time"

// Проводки по счету

type Transaction struct {
	Kind         string
	Amount       float64 // со знаком: пополнение > 0, снятие < 0 (включая комиссию)
	BalanceAfter float64
	Timestamp    time.Time
}

const (
	TransactionKindDeposit  = "DEPOSIT"
	TransactionKindWithdraw = "WITHDRAW"
)
