// Package console - текстовый фронтенд: меню и диалоги поверх bank.
// Сюда же вынесены операции с файлами: снапшот и выписка по счету.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/theplant/luhn"
	"go.uber.org/zap"

	"github.com/iurnickita/bankledger/internal/bank"
	"github.com/iurnickita/bankledger/internal/console/config"
)

const (
	snapshotFile  = "bank.json"
	statementFile = "statement.txt"
)

func Serve(cfg config.Config, b *bank.Bank, zaplog *zap.Logger) error {
	c := newConsole(cfg, b, zaplog, os.Stdin, os.Stdout)
	return c.run()
}

type console struct {
	cfg    config.Config
	bank   *bank.Bank
	zaplog *zap.Logger
	in     *bufio.Scanner
	out    io.Writer
}

func newConsole(cfg config.Config, b *bank.Bank, zaplog *zap.Logger, in io.Reader, out io.Writer) *console {
	return &console{
		cfg:    cfg,
		bank:   b,
		zaplog: zaplog,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

const menu = `--- Bank ---
 1. Lägg till kund
 2. Tabort kund
 3. Ändra kundnamn
 4. Hämta kund
 5. Hämta alla kunder
 6. Lägg till konto
 7. Stäng konto
 8. Insättning
 9. Uttag
10. Transaktioner
11. Hämta konto
12. Spara kunder till fil
13. Läs in kunder från fil
14. Skapa kontoutdrag
 0. Avsluta
Val: `

func (c *console) run() error {
	if err := os.MkdirAll(c.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	for {
		fmt.Fprint(c.out, menu)
		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		c.zaplog.Info("menu action", zap.String("choice", choice))

		switch choice {
		case "1":
			c.addCustomer()
		case "2":
			c.deleteCustomer()
		case "3":
			c.changeCustomerName()
		case "4":
			c.getCustomer()
		case "5":
			c.getAllCustomers()
		case "6":
			c.addAccount()
		case "7":
			c.closeAccount()
		case "8":
			c.deposit()
		case "9":
			c.withdraw()
		case "10":
			c.getTransactions()
		case "11":
			c.getAccount()
		case "12":
			c.saveToFile()
		case "13":
			c.loadFromFile()
		case "14":
			c.writeStatement()
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Ogiltigt val.")
		}
	}
}

func (c *console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *console) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	return c.readLine()
}

func (c *console) promptInt(label string) (int, bool) {
	s, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintln(c.out, "Ogiltig inmatning.")
		return 0, false
	}
	return n, true
}

func (c *console) addCustomer() {
	name, ok := c.prompt("Namn")
	if !ok {
		return
	}
	surname, ok := c.prompt("Efternamn")
	if !ok {
		return
	}
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}

	// номер для банка непрозрачен, контрольная цифра проверяется
	// только ради предупреждения в логе
	if !personnummerChecksumOK(pNo) {
		c.zaplog.Warn("personnummer failed Luhn check", zap.String("pNo", pNo))
	}

	if err := c.bank.CreateCustomer(name, surname, pNo); err != nil {
		fmt.Fprintln(c.out, "Gick inte att lägga till kund. Kunden kanske redan existerar.")
		return
	}
	fmt.Fprintln(c.out, "Kunden lades till korrekt. Personnummer: "+pNo)
}

// personnummerChecksumOK проверяет 10-значный personnummer по алгоритму Луна.
// Другие форматы пропускаются без проверки.
func personnummerChecksumOK(pNo string) bool {
	if len(pNo) != 10 {
		return true
	}
	n, err := strconv.Atoi(pNo)
	if err != nil {
		return true
	}
	return luhn.Valid(n)
}

func (c *console) deleteCustomer() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	lines, err := c.bank.DeleteCustomer(pNo)
	if err != nil {
		fmt.Fprintln(c.out, "Det gick inte att ta bort kunden. Kunden hittades inte.")
		return
	}
	fmt.Fprintln(c.out, "Kunden togs bort:")
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *console) changeCustomerName() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	name, ok := c.prompt("Nytt namn")
	if !ok {
		return
	}
	surname, ok := c.prompt("Nytt efternamn")
	if !ok {
		return
	}
	if err := c.bank.ChangeCustomerName(pNo, name, surname); err != nil {
		fmt.Fprintln(c.out, "Kunde inte ändra kundens namn.")
		return
	}
	fmt.Fprintf(c.out, "Kundens namn ändrades till: %s %s\n", name, surname)
}

func (c *console) getCustomer() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	lines, err := c.bank.GetCustomer(pNo)
	if err != nil {
		fmt.Fprintln(c.out, "Kunden hittades inte.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *console) getAllCustomers() {
	for _, line := range c.bank.GetAllCustomers() {
		fmt.Fprintln(c.out, line)
	}
}

func (c *console) addAccount() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	kind, ok := c.prompt("Kontotyp (1 Sparkonto, 2 Kreditkonto)")
	if !ok {
		return
	}

	var (
		id  int
		err error
	)
	switch kind {
	case "1":
		id, err = c.bank.CreateSavingsAccount(pNo)
	case "2":
		id, err = c.bank.CreateCreditAccount(pNo)
	default:
		fmt.Fprintln(c.out, "Ogiltigt val.")
		return
	}
	if err != nil {
		fmt.Fprintln(c.out, "Det gick inte att skapa konto. Kunden hittades ej.")
		return
	}
	fmt.Fprintf(c.out, "Kontot skapades. Konto ID: %d\n", id)
}

func (c *console) closeAccount() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	line, err := c.bank.CloseAccount(pNo, id)
	if err != nil {
		fmt.Fprintln(c.out, "Det gick inte att avsluta konto.")
		return
	}
	fmt.Fprintln(c.out, "Kontot avslutades:")
	fmt.Fprintln(c.out, line)
}

func (c *console) deposit() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	amount, ok := c.promptInt("Belopp")
	if !ok {
		return
	}
	if err := c.bank.Deposit(pNo, id, amount); err != nil {
		fmt.Fprintln(c.out, "Insättning misslyckades.")
		return
	}
	fmt.Fprintln(c.out, "Insättning lyckades.")
}

func (c *console) withdraw() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	s, ok := c.prompt("Belopp")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Ogiltig inmatning.")
		return
	}
	if err := c.bank.Withdraw(pNo, id, amount); err != nil {
		fmt.Fprintln(c.out, "Uttag misslyckades.")
		return
	}
	fmt.Fprintln(c.out, "Uttag lyckades.")
}

func (c *console) getTransactions() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	lines, err := c.bank.GetTransactions(pNo, id)
	if err != nil {
		fmt.Fprintln(c.out, "Konto hittades inte.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *console) getAccount() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	line, err := c.bank.GetAccount(pNo, id)
	if err != nil {
		fmt.Fprintln(c.out, "Konto hittades inte.")
		return
	}
	fmt.Fprintln(c.out, line)
}

func (c *console) saveToFile() {
	path := filepath.Join(c.cfg.DataDir, snapshotFile)
	if err := c.bank.SaveToFile(path); err != nil {
		c.zaplog.Error("save snapshot", zap.Error(err))
		fmt.Fprintln(c.out, "Fel vid sparande: "+err.Error())
		return
	}
	fmt.Fprintln(c.out, "Kunder sparade till fil.")
}

func (c *console) loadFromFile() {
	path := filepath.Join(c.cfg.DataDir, snapshotFile)
	if err := c.bank.LoadFromFile(path); err != nil {
		c.zaplog.Error("load snapshot", zap.Error(err))
		fmt.Fprintln(c.out, "Fel vid inläsning: "+err.Error())
		return
	}
	fmt.Fprintln(c.out, "Kunder lästa in från fil.")
}

// writeStatement пишет выписку: первая строка с датой, вторая - строка счета
func (c *console) writeStatement() {
	pNo, ok := c.prompt("Personnummer")
	if !ok {
		return
	}
	id, ok := c.promptInt("Konto ID")
	if !ok {
		return
	}
	line, err := c.bank.GetAccount(pNo, id)
	if err != nil {
		fmt.Fprintln(c.out, "Konto eller kund hittades inte.")
		return
	}

	path := filepath.Join(c.cfg.DataDir, statementFile)
	content := fmt.Sprintf("Kontoutdrag - %s\n%s\n", time.Now().Format("2006-01-02"), line)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		c.zaplog.Error("write statement", zap.Error(err))
		fmt.Fprintln(c.out, "Fel vid generering av kontoutdrag: "+err.Error())
		return
	}
	fmt.Fprintln(c.out, "Kontoutdrag sparat i: "+path)
}
