package bank

// Customer - клиент банка: неизменяемый личный номер, имя и фамилия,
// упорядоченный список счетов. Бизнес-правил здесь нет.
type Customer struct {
	personalNumber string
	name           string
	surname        string
	accounts       []Account
}

func newCustomer(name, surname, personalNumber string) *Customer {
	return &Customer{
		personalNumber: personalNumber,
		name:           name,
		surname:        surname,
	}
}

func (c *Customer) addAccount(a Account) {
	c.accounts = append(c.accounts, a)
}

func (c *Customer) findAccount(number int) Account {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a
		}
	}
	return nil
}

func (c *Customer) removeAccount(number int) {
	for i, a := range c.accounts {
		if a.Number() == number {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return
		}
	}
}
