// Package store - файловый снапшот состояния банка.
// Формат: версионированный JSON, запись атомарная (tmp-файл + rename),
// чтобы сбой на середине записи не портил прежний файл.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	snapshotFormat  = "bank_snapshot"
	snapshotVersion = 1
)

// Метаданные снапшота - для сверки формата при загрузке
type Meta struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	WrittenAt time.Time `json:"written_at"`
}

type Snapshot struct {
	Meta              Meta       `json:"_meta"`
	NextAccountNumber int        `json:"next_account_number"`
	Customers         []Customer `json:"customers"`
}

type Customer struct {
	PersonalNumber string    `json:"personal_number"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Accounts       []Account `json:"accounts"`
}

const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeCredit  = "CREDIT"
)

type Account struct {
	Type                string        `json:"type"`
	Number              int           `json:"number"`
	Balance             float64       `json:"balance"`
	FirstWithdrawalUsed bool          `json:"first_withdrawal_used,omitempty"`
	Transactions        []Transaction `json:"transactions"`
}

type Transaction struct {
	Kind         string    `json:"kind"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	Timestamp    time.Time `json:"timestamp"`
}

// Save пишет снапшот в файл атомарно
func Save(path string, snap Snapshot) error {
	snap.Meta = Meta{
		Format:    snapshotFormat,
		Version:   snapshotVersion,
		WrittenAt: time.Now(),
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load читает и разбирает снапшот
func Load(path string) (Snapshot, error) {
	var snap Snapshot

	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("load snapshot: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Meta.Format != snapshotFormat {
		return snap, fmt.Errorf("load snapshot: unexpected format %q", snap.Meta.Format)
	}
	if snap.Meta.Version != snapshotVersion {
		return snap, fmt.Errorf("load snapshot: unsupported version %d", snap.Meta.Version)
	}
	return snap, nil
}
