// Package a1 переводит колонки между буквенной нотацией таблиц (A, Z, AA) и 1-based индексами.
package a1

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidColumn = errors.New("invalid column")

// ColumnToIndex A -> 1, Z -> 26, AA -> 27. Регистр не важен.
func ColumnToIndex(column string) (int, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidColumn)
	}

	n := 0
	for _, ch := range column {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n, nil
}

// IndexToColumn 1 -> A, 27 -> AA. Для n < 1 возвращает пустую строку.
func IndexToColumn(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// QuoteSheet имя листа в кавычках, одинарная кавычка удваивается.
func QuoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func Cell(sheet, column string, row int) string {
	return fmt.Sprintf("%s!%s%d", QuoteSheet(sheet), strings.ToUpper(column), row)
}

func RowRange(sheet string, row int, fromColumn, toColumn string) string {
	return fmt.Sprintf("%s!%s%d:%s%d", QuoteSheet(sheet), strings.ToUpper(fromColumn), row, strings.ToUpper(toColumn), row)
}

func ColumnRange(sheet, column string, fromRow, toRow int) string {
	column = strings.ToUpper(column)
	return fmt.Sprintf("%s!%s%d:%s%d", QuoteSheet(sheet), column, fromRow, column, toRow)
}
