package logger

import (
	"github.com/iurnickita/bankledger/internal/logger/config"
	"go.uber.org/zap"
)

func NewZapLog(cfg config.Config) (*zap.Logger, error) {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	// создаём новую конфигурацию логера
	zapcfg := zap.NewProductionConfig()
	// устанавливаем уровень
	zapcfg.Level = lvl
	// создаём логер на основе конфигурации
	zl, err := zapcfg.Build()
	if err != nil {
		return nil, err
	}
	//
	return zl, nil
}
