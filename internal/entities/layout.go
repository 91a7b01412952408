package entities

// Layout описывает матрицу шаблонного листа: адреса в строке заголовка, товары в колонке.
type Layout struct {
	SpreadsheetID      string
	TemplateSheetName  string
	SheetPrefix        string
	AddressHeaderRow   int
	AddressStartColumn string
	ItemNameColumn     string
	ItemRowStart       int
	ItemRowEnd         int
	ExcludedRows       map[int]struct{}
	ExcludedValues     map[string]struct{}
	Multiples          map[string]int
}

const DefaultMultiple = 1

// DailySheetPrefix префикс датированного листа, по умолчанию код категории.
func (l Layout) DailySheetPrefix(category OrderCategory) string {
	if l.SheetPrefix != "" {
		return l.SheetPrefix
	}
	return category.String()
}

// MultipleFor кратность товара по точному имени, по умолчанию 1.
func (l Layout) MultipleFor(itemName string) int {
	if m, ok := l.Multiples[itemName]; ok && m > 0 {
		return m
	}
	return DefaultMultiple
}

type AddressColumn struct {
	Label  string
	Column string
}
