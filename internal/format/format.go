// Package format отвечает за отображение сумм и ставок в шведском формате.
// Строки входят во внешний контракт с фронтендом, поэтому формат закреплен
// здесь побайтово и проверяется golden-тестами.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Разделитель групп разрядов - неразрывный пробел (U+00A0)
const groupSeparator = " "

// Currency форматирует сумму по шведским правилам: "1 000,00 kr"
func Currency(v float64) string {
	cents := int64(math.Round(v * 100))

	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	frac := fmt.Sprintf("%02d", cents%100)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	// группировка целой части по три разряда справа
	lead := len(whole) % 3
	if lead > 0 {
		sb.WriteString(whole[:lead])
		if len(whole) > lead {
			sb.WriteString(groupSeparator)
		}
	}
	for i := lead; i < len(whole); i += 3 {
		sb.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			sb.WriteString(groupSeparator)
		}
	}
	sb.WriteByte(',')
	sb.WriteString(frac)
	sb.WriteString(" kr")
	return sb.String()
}

// InterestRate форматирует процентную ставку: "5 %", "1,1 %", "2,4 %".
// Точные значения выводятся особым образом - так их показывает фронтенд.
func InterestRate(rate float64) string {
	sign := ""
	if rate < 0 {
		sign = "-"
	}
	switch math.Abs(rate) {
	case 5.0:
		return sign + "5 %"
	case 1.1:
		return sign + "1,1 %"
	case 2.4:
		return sign + "2,4 %"
	}
	return strings.Replace(fmt.Sprintf("%.1f %%", rate), ".", ",", 1)
}
