// Package bank - ядро бухгалтерии: клиенты, счета двух видов, проводки.
// Все операции синхронные и идут через Bank; фронтенд получает только
// готовые строки для показа.
package bank

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iurnickita/bankledger/internal/format"
	"github.com/iurnickita/bankledger/internal/model"
	"github.com/iurnickita/bankledger/internal/store"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateCustomer = errors.New("customer already exists")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCreditLimit       = errors.New("credit limit exceeded")
	ErrBadSnapshot       = errors.New("malformed snapshot")
)

const timeLayout = "2006-01-02 15:04:05"

// Bank владеет клиентами и выдает номера счетов.
// Единый мьютекс сериализует все операции - фронтенд один, пропускная
// способность не важна.
type Bank struct {
	mu                sync.Mutex
	customers         []*Customer
	nextAccountNumber int
}

func NewBank() *Bank {
	return &Bank{nextAccountNumber: 1000}
}

func (b *Bank) findCustomer(pNo string) *Customer {
	for _, c := range b.customers {
		if c.personalNumber == pNo {
			return c
		}
	}
	return nil
}

// CreateCustomer регистрирует нового клиента.
// Личный номер должен быть уникален в пределах банка.
func (b *Bank) CreateCustomer(name, surname, pNo string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findCustomer(pNo) != nil {
		return ErrDuplicateCustomer
	}
	b.customers = append(b.customers, newCustomer(name, surname, pNo))
	return nil
}

// GetAllCustomers возвращает строки всех клиентов в порядке регистрации
func (b *Bank) GetAllCustomers() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, 0, len(b.customers))
	for _, c := range b.customers {
		lines = append(lines, customerLine(c))
	}
	return lines
}

// GetCustomer возвращает строку клиента и по строке на каждый его счет
func (b *Bank) GetCustomer(pNo string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findCustomer(pNo)
	if c == nil {
		return nil, ErrCustomerNotFound
	}

	lines := []string{customerLine(c)}
	for _, a := range c.accounts {
		lines = append(lines, accountLine(a))
	}
	return lines, nil
}

// ChangeCustomerName меняет имя и фамилию клиента. Оба значения обязательны.
func (b *Bank) ChangeCustomerName(pNo, name, surname string) error {
	if name == "" || surname == "" {
		return ErrEmptyName
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findCustomer(pNo)
	if c == nil {
		return ErrCustomerNotFound
	}
	c.name = name
	c.surname = surname
	return nil
}

// CreateSavingsAccount открывает сберегательный счет и возвращает его номер
func (b *Bank) CreateSavingsAccount(pNo string) (int, error) {
	return b.createAccount(pNo, func(number int) Account {
		return NewSavingsAccount(number)
	})
}

// CreateCreditAccount открывает кредитный счет и возвращает его номер
func (b *Bank) CreateCreditAccount(pNo string) (int, error) {
	return b.createAccount(pNo, func(number int) Account {
		return NewCreditAccount(number)
	})
}

func (b *Bank) createAccount(pNo string, construct func(number int) Account) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findCustomer(pNo)
	if c == nil {
		return 0, ErrCustomerNotFound
	}

	// номера выдаются по возрастанию и никогда не переиспользуются
	b.nextAccountNumber++
	a := construct(b.nextAccountNumber)
	c.addAccount(a)
	return a.Number(), nil
}

// GetAccount возвращает строку счета
func (b *Bank) GetAccount(pNo string, accountID int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.findAccount(pNo, accountID)
	if err != nil {
		return "", err
	}
	return accountLine(a), nil
}

// Deposit пополняет счет на целую положительную сумму
func (b *Bank) Deposit(pNo string, accountID int, amount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.findAccount(pNo, accountID)
	if err != nil {
		return err
	}
	return a.Deposit(amount)
}

// Withdraw снимает сумму со счета. Комиссия и лимит зависят от вида счета.
func (b *Bank) Withdraw(pNo string, accountID int, amount float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.findAccount(pNo, accountID)
	if err != nil {
		return err
	}
	return a.Withdraw(amount)
}

// GetTransactions возвращает строки проводок счета.
// Для существующего счета без проводок возвращается пустой срез, не nil.
func (b *Bank) GetTransactions(pNo string, accountID int) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.findAccount(pNo, accountID)
	if err != nil {
		return nil, err
	}

	ts := a.Transactions()
	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		lines = append(lines, transactionLine(t))
	}
	return lines, nil
}

// CloseAccount закрывает счет и возвращает итоговую строку.
// В строке остаток на момент закрытия (до начисления процентов) и сумма
// процентов по правилам вида счета.
func (b *Bank) CloseAccount(pNo string, accountID int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findCustomer(pNo)
	if c == nil {
		return "", ErrCustomerNotFound
	}
	a := c.findAccount(accountID)
	if a == nil {
		return "", ErrAccountNotFound
	}

	line := closeLine(a)
	c.removeAccount(accountID)
	return line, nil
}

// DeleteCustomer закрывает все счета клиента и удаляет его самого.
// Первая строка - клиент, дальше по строке закрытия на каждый счет
// в порядке открытия.
func (b *Bank) DeleteCustomer(pNo string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findCustomer(pNo)
	if c == nil {
		return nil, ErrCustomerNotFound
	}

	lines := []string{customerLine(c)}

	// обходим копию: removeAccount меняет исходный срез
	accounts := make([]Account, len(c.accounts))
	copy(accounts, c.accounts)
	for _, a := range accounts {
		lines = append(lines, closeLine(a))
		c.removeAccount(a.Number())
	}

	for i, cc := range b.customers {
		if cc == c {
			b.customers = append(b.customers[:i], b.customers[i+1:]...)
			break
		}
	}
	return lines, nil
}

func (b *Bank) findAccount(pNo string, accountID int) (Account, error) {
	c := b.findCustomer(pNo)
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	a := c.findAccount(accountID)
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Строки для фронтенда

func customerLine(c *Customer) string {
	return fmt.Sprintf("%s %s %s", c.personalNumber, c.name, c.surname)
}

func accountLine(a Account) string {
	return fmt.Sprintf("%d %s %s %s",
		a.Number(),
		format.Currency(a.Balance()),
		a.Type(),
		format.InterestRate(a.InterestRate()))
}

func closeLine(a Account) string {
	return fmt.Sprintf("%d %s %s %s",
		a.Number(),
		format.Currency(a.Balance()),
		a.Type(),
		format.Currency(a.CloseInterest()))
}

func transactionLine(t model.Transaction) string {
	return fmt.Sprintf("%s %s Saldo: %s",
		t.Timestamp.Format(timeLayout),
		format.Currency(t.Amount),
		format.Currency(t.BalanceAfter))
}

// SaveToFile сохраняет всех клиентов со счетами в файл снапшота
func (b *Bank) SaveToFile(path string) error {
	return store.Save(path, b.Snapshot())
}

// LoadFromFile замещает состояние банка содержимым файла снапшота
func (b *Bank) LoadFromFile(path string) error {
	snap, err := store.Load(path)
	if err != nil {
		return err
	}
	return b.Restore(snap)
}

// Snapshot выгружает полное состояние банка для сохранения в файл
func (b *Bank) Snapshot() store.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := store.Snapshot{NextAccountNumber: b.nextAccountNumber}
	for _, c := range b.customers {
		pc := store.Customer{
			PersonalNumber: c.personalNumber,
			Name:           c.name,
			Surname:        c.surname,
		}
		for _, a := range c.accounts {
			pa := store.Account{
				Number:  a.Number(),
				Balance: a.Balance(),
			}
			switch acc := a.(type) {
			case *SavingsAccount:
				pa.Type = store.AccountTypeSavings
				pa.FirstWithdrawalUsed = acc.firstWithdrawalUsed
			case *CreditAccount:
				pa.Type = store.AccountTypeCredit
			}
			for _, t := range a.Transactions() {
				pa.Transactions = append(pa.Transactions, store.Transaction{
					Kind:         t.Kind,
					Amount:       t.Amount,
					BalanceAfter: t.BalanceAfter,
					Timestamp:    t.Timestamp,
				})
			}
			pc.Accounts = append(pc.Accounts, pa)
		}
		snap.Customers = append(snap.Customers, pc)
	}
	return snap
}

// Restore восстанавливает состояние банка из снапшота.
// Текущее состояние полностью замещается.
func (b *Bank) Restore(snap store.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	customers := make([]*Customer, 0, len(snap.Customers))
	for _, pc := range snap.Customers {
		c := newCustomer(pc.Name, pc.Surname, pc.PersonalNumber)
		for _, pa := range pc.Accounts {
			var a Account
			switch pa.Type {
			case store.AccountTypeSavings:
				s := NewSavingsAccount(pa.Number)
				s.balance = pa.Balance
				s.firstWithdrawalUsed = pa.FirstWithdrawalUsed
				s.transactions = restoreTransactions(pa.Transactions)
				a = s
			case store.AccountTypeCredit:
				cr := NewCreditAccount(pa.Number)
				cr.balance = pa.Balance
				cr.transactions = restoreTransactions(pa.Transactions)
				a = cr
			default:
				return fmt.Errorf("%w: unknown account type %q", ErrBadSnapshot, pa.Type)
			}
			c.addAccount(a)
		}
		customers = append(customers, c)
	}

	b.customers = customers
	b.nextAccountNumber = snap.NextAccountNumber
	return nil
}

func restoreTransactions(in []store.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(in))
	for _, t := range in {
		out = append(out, model.Transaction{
			Kind:         t.Kind,
			Amount:       t.Amount,
			BalanceAfter: t.BalanceAfter,
			Timestamp:    t.Timestamp,
		})
	}
	return out
}
