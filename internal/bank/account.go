package bank

import (
	"time"

	"github.com/iurnickita/bankledger/internal/model"
)

// Условия по счетам
const (
	savingsInterestRate  = 0.024 // 2,4% при закрытии
	savingsWithdrawalFee = 0.02  // 2% со второго снятия

	creditLimit        = -5000.0
	creditPositiveRate = 0.011 // 1,1% при неотрицательном остатке
	creditNegativeRate = 0.05  // 5% по долгу
)

// Названия типов счетов - часть внешнего контракта с фронтендом
const (
	TypeSavings = "Sparkonto"
	TypeCredit  = "Kreditkonto"
)

// Account - общий контракт двух видов счетов.
// Правила снятия и начисления процентов зависят от вида.
type Account interface {
	Number() int
	Balance() float64
	Type() string
	InterestRate() float64
	Transactions() []model.Transaction

	Deposit(amount int) error
	Withdraw(amount float64) error
	// CloseInterest возвращает проценты при закрытии счета.
	// Остаток не меняет: счет сразу после вызова удаляется.
	CloseInterest() float64
}

type account struct {
	number       int
	balance      float64
	transactions []model.Transaction
}

func (a *account) Number() int {
	return a.number
}

func (a *account) Balance() float64 {
	return a.balance
}

func (a *account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// record добавляет проводку после успешного изменения остатка
func (a *account) record(kind string, amount float64) {
	a.transactions = append(a.transactions, model.Transaction{
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
		Timestamp:    time.Now(),
	})
}

func (a *account) Deposit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += float64(amount)
	a.record(model.TransactionKindDeposit, float64(amount))
	return nil
}

// SavingsAccount - сберегательный счет.
// Первое снятие без комиссии, последующие с комиссией 2%. Остаток не может
// уйти в минус.
type SavingsAccount struct {
	account
	firstWithdrawalUsed bool
}

func NewSavingsAccount(number int) *SavingsAccount {
	return &SavingsAccount{account: account{number: number}}
}

func (s *SavingsAccount) Type() string {
	return TypeSavings
}

func (s *SavingsAccount) InterestRate() float64 {
	return savingsInterestRate * 100
}

func (s *SavingsAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	debit := amount
	if s.firstWithdrawalUsed {
		debit += amount * savingsWithdrawalFee
	}
	if debit > s.balance {
		return ErrInsufficientFunds
	}
	s.balance -= debit
	s.firstWithdrawalUsed = true
	s.record(model.TransactionKindWithdraw, -debit)
	return nil
}

func (s *SavingsAccount) CloseInterest() float64 {
	return s.balance * savingsInterestRate
}

// CreditAccount - кредитный счет с лимитом -5000.
// Снятие нуля допускается и фиксируется проводкой - так ведет себя фронтенд,
// поведение сохранено сознательно.
type CreditAccount struct {
	account
}

func NewCreditAccount(number int) *CreditAccount {
	return &CreditAccount{account: account{number: number}}
}

func (c *CreditAccount) Type() string {
	return TypeCredit
}

func (c *CreditAccount) InterestRate() float64 {
	if c.balance >= 0 {
		return creditPositiveRate * 100
	}
	return creditNegativeRate * 100
}

func (c *CreditAccount) Withdraw(amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if c.balance-amount < creditLimit {
		return ErrCreditLimit
	}
	c.balance -= amount
	c.record(model.TransactionKindWithdraw, -amount)
	return nil
}

func (c *CreditAccount) CloseInterest() float64 {
	if c.balance >= 0 {
		return c.balance * creditPositiveRate
	}
	return c.balance * creditNegativeRate
}
