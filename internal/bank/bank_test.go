package bank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCustomerDuplicate(t *testing.T) {
	b := NewBank()

	err := b.CreateCustomer("A", "B", "19900101")
	require.NoError(t, err)

	// повторная регистрация с тем же номером
	err = b.CreateCustomer("A", "B", "19900101")
	require.ErrorIs(t, err, ErrDuplicateCustomer)

	require.Len(t, b.GetAllCustomers(), 1)
}

func TestGetAllCustomersOrder(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("Anna", "Svensson", "111"))
	require.NoError(t, b.CreateCustomer("Bo", "Berg", "222"))

	require.Equal(t, []string{
		"111 Anna Svensson",
		"222 Bo Berg",
	}, b.GetAllCustomers())
}

func TestChangeCustomerName(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("Anna", "Svensson", "111"))

	// оба имени обязательны
	require.ErrorIs(t, b.ChangeCustomerName("111", "", "Berg"), ErrEmptyName)
	require.ErrorIs(t, b.ChangeCustomerName("111", "Bo", ""), ErrEmptyName)

	require.ErrorIs(t, b.ChangeCustomerName("999", "Bo", "Berg"), ErrCustomerNotFound)

	require.NoError(t, b.ChangeCustomerName("111", "Bo", "Berg"))
	lines, err := b.GetCustomer("111")
	require.NoError(t, err)
	require.Equal(t, "111 Bo Berg", lines[0])
}

func TestAccountNumbersMonotonic(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "111"))
	require.NoError(t, b.CreateCustomer("C", "D", "222"))

	// первый счет нового банка всегда 1001
	id, err := b.CreateSavingsAccount("111")
	require.NoError(t, err)
	require.Equal(t, 1001, id)

	id, err = b.CreateCreditAccount("222")
	require.NoError(t, err)
	require.Equal(t, 1002, id)

	// номера не переиспользуются после удаления клиента
	_, err = b.DeleteCustomer("222")
	require.NoError(t, err)

	id, err = b.CreateSavingsAccount("111")
	require.NoError(t, err)
	require.Equal(t, 1003, id)

	_, err = b.CreateSavingsAccount("999")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestSavingsWithdrawalFeePath(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "19900101"))

	id, err := b.CreateSavingsAccount("19900101")
	require.NoError(t, err)
	require.Equal(t, 1001, id)

	require.NoError(t, b.Deposit("19900101", 1001, 1000))

	// первое снятие без комиссии
	require.NoError(t, b.Withdraw("19900101", 1001, 500))
	a, err := b.findAccount("19900101", 1001)
	require.NoError(t, err)
	require.InDelta(t, 500, a.Balance(), 1e-9)

	// второе снятие с комиссией 2%: списывается 102
	require.NoError(t, b.Withdraw("19900101", 1001, 100))
	require.InDelta(t, 398, a.Balance(), 1e-9)

	ts := a.Transactions()
	require.Len(t, ts, 3)
	require.InDelta(t, -500, ts[1].Amount, 1e-9)
	require.InDelta(t, -102, ts[2].Amount, 1e-9)

	// остаток совпадает с balance_after последней проводки
	require.Equal(t, a.Balance(), ts[2].BalanceAfter)
}

func TestCreditLimitBoundary(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "19900101"))
	_, err := b.CreateSavingsAccount("19900101")
	require.NoError(t, err)

	id, err := b.CreateCreditAccount("19900101")
	require.NoError(t, err)
	require.Equal(t, 1002, id)

	// снятие ровно до лимита
	require.NoError(t, b.Withdraw("19900101", 1002, 5000))
	a, err := b.findAccount("19900101", 1002)
	require.NoError(t, err)
	require.Equal(t, -5000.0, a.Balance())

	// за лимит нельзя, остаток не меняется
	require.ErrorIs(t, b.Withdraw("19900101", 1002, 1), ErrCreditLimit)
	require.Equal(t, -5000.0, a.Balance())
}

func TestDepositValidation(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "111"))
	id, err := b.CreateSavingsAccount("111")
	require.NoError(t, err)

	require.ErrorIs(t, b.Deposit("111", id, 0), ErrInvalidAmount)
	require.ErrorIs(t, b.Deposit("111", id, -5), ErrInvalidAmount)
	require.ErrorIs(t, b.Deposit("111", 9999, 100), ErrAccountNotFound)
	require.ErrorIs(t, b.Deposit("999", id, 100), ErrCustomerNotFound)

	// неудачные попытки не оставляют проводок
	a, err := b.findAccount("111", id)
	require.NoError(t, err)
	require.Empty(t, a.Transactions())
}

func TestGetTransactions(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "111"))
	id, err := b.CreateSavingsAccount("111")
	require.NoError(t, err)

	// счет есть, проводок нет: пустой срез, не nil
	lines, err := b.GetTransactions("111", id)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)

	_, err = b.GetTransactions("111", 9999)
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, b.Deposit("111", id, 1000))
	lines, err = b.GetTransactions("111", id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} 1\x{00a0}000,00 kr Saldo: 1\x{00a0}000,00 kr$`, lines[0])
}

func TestCloseCreditAccountInDebt(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "19900101"))
	_, err := b.CreateSavingsAccount("19900101")
	require.NoError(t, err)
	id, err := b.CreateCreditAccount("19900101")
	require.NoError(t, err)

	require.NoError(t, b.Withdraw("19900101", id, 5000))

	// в строке остаток до начисления процентов и 5% по долгу
	line, err := b.CloseAccount("19900101", id)
	require.NoError(t, err)
	require.Equal(t, "1002 -5 000,00 kr Kreditkonto -250,00 kr", line)

	// счет удален
	_, err = b.GetAccount("19900101", id)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCloseSavingsAccount(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "111"))
	id, err := b.CreateSavingsAccount("111")
	require.NoError(t, err)
	require.NoError(t, b.Deposit("111", id, 1000))

	// 2,4% от остатка на момент закрытия
	line, err := b.CloseAccount("111", id)
	require.NoError(t, err)
	require.Equal(t, "1001 1 000,00 kr Sparkonto 24,00 kr", line)
}

func TestDeleteCustomerCascade(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "19900101"))
	_, err := b.CreateSavingsAccount("19900101")
	require.NoError(t, err)
	_, err = b.CreateCreditAccount("19900101")
	require.NoError(t, err)

	require.NoError(t, b.Deposit("19900101", 1001, 1000))
	require.NoError(t, b.Withdraw("19900101", 1002, 5000))

	lines, err := b.DeleteCustomer("19900101")
	require.NoError(t, err)
	require.Equal(t, []string{
		"19900101 A B",
		"1001 1 000,00 kr Sparkonto 24,00 kr",
		"1002 -5 000,00 kr Kreditkonto -250,00 kr",
	}, lines)

	// банк пуст
	require.Empty(t, b.GetAllCustomers())

	_, err = b.DeleteCustomer("19900101")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetCustomerWithAccounts(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("Anna", "Svensson", "111"))
	_, err := b.CreateSavingsAccount("111")
	require.NoError(t, err)
	_, err = b.CreateCreditAccount("111")
	require.NoError(t, err)

	lines, err := b.GetCustomer("111")
	require.NoError(t, err)
	require.Equal(t, []string{
		"111 Anna Svensson",
		"1001 0,00 kr Sparkonto 2,4 %",
		"1002 0,00 kr Kreditkonto 1,1 %",
	}, lines)

	_, err = b.GetCustomer("999")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreditRateSwitchesInDebt(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.CreateCustomer("A", "B", "111"))
	id, err := b.CreateCreditAccount("111")
	require.NoError(t, err)

	require.NoError(t, b.Withdraw("111", id, 100))

	// при отрицательном остатке ставка 5%
	line, err := b.GetAccount("111", id)
	require.NoError(t, err)
	require.Equal(t, "1001 -100,00 kr Kreditkonto 5 %", line)
}
