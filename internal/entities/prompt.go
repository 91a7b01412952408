package entities

// Prompt сообщение бота с inline-клавиатурой. Каждая строка клавиатуры это ряд кнопок.
type Prompt struct {
	Text     string
	Keyboard [][]Choice
}

type Choice struct {
	Label  string
	Action Action
}

func SingleChoiceRow(label string, action Action) []Choice {
	return []Choice{{Label: label, Action: action}}
}
