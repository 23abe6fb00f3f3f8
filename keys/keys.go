package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyDigit0 KeyName = iota
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyPoint
	KeySign

	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyPower
	KeyEquals

	KeyReciprocal
	KeySin
	KeyCos
	KeyTan
	KeyCtg
	KeyLog
	KeyLn

	KeyClear
	KeyReset
	KeyPush
	KeyPop
	KeyInvert

	KeyCopy
	KeyHelp
	KeyQuit
)

// IsDigit reports whether k enters a digit.
func (k KeyName) IsDigit() bool {
	return k >= KeyDigit0 && k <= KeyDigit9
}

// Digit returns the digit entered by a digit key.
func (k KeyName) Digit() int {
	return int(k - KeyDigit0)
}

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"0":         KeyDigit0,
	"1":         KeyDigit1,
	"2":         KeyDigit2,
	"3":         KeyDigit3,
	"4":         KeyDigit4,
	"5":         KeyDigit5,
	"6":         KeyDigit6,
	"7":         KeyDigit7,
	"8":         KeyDigit8,
	"9":         KeyDigit9,
	".":         KeyPoint,
	",":         KeyPoint,
	"n":         KeySign,
	"+":         KeyAdd,
	"-":         KeySubtract,
	"*":         KeyMultiply,
	"x":         KeyMultiply,
	"/":         KeyDivide,
	"^":         KeyPower,
	"=":         KeyEquals,
	"enter":     KeyEquals,
	"r":         KeyReciprocal,
	"s":         KeySin,
	"c":         KeyCos,
	"t":         KeyTan,
	"g":         KeyCtg,
	"l":         KeyLog,
	"e":         KeyLn,
	"backspace": KeyClear,
	"delete":    KeyClear,
	"esc":       KeyReset,
	"p":         KeyPush,
	"o":         KeyPop,
	"i":         KeyInvert,
	"y":         KeyCopy,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyDigit0: digitBinding("0"),
	KeyDigit1: digitBinding("1"),
	KeyDigit2: digitBinding("2"),
	KeyDigit3: digitBinding("3"),
	KeyDigit4: digitBinding("4"),
	KeyDigit5: digitBinding("5"),
	KeyDigit6: digitBinding("6"),
	KeyDigit7: digitBinding("7"),
	KeyDigit8: digitBinding("8"),
	KeyDigit9: digitBinding("9"),
	KeyPoint: key.NewBinding(
		key.WithKeys(".", ","),
		key.WithHelp(".", "point"),
	),
	KeySign: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "+/-"),
	),
	KeyAdd: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "add"),
	),
	KeySubtract: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "subtract"),
	),
	KeyMultiply: key.NewBinding(
		key.WithKeys("*", "x"),
		key.WithHelp("*", "multiply"),
	),
	KeyDivide: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "divide"),
	),
	KeyPower: key.NewBinding(
		key.WithKeys("^"),
		key.WithHelp("^", "x^n"),
	),
	KeyEquals: key.NewBinding(
		key.WithKeys("=", "enter"),
		key.WithHelp("=", "equals"),
	),
	KeyReciprocal: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "1/x"),
	),
	KeySin: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sin"),
	),
	KeyCos: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cos"),
	),
	KeyTan: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tan"),
	),
	KeyCtg: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "ctg"),
	),
	KeyLog: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log"),
	),
	KeyLn: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "ln"),
	),
	KeyClear: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("⌫", "clear"),
	),
	KeyReset: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "reset"),
	),
	KeyPush: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "push"),
	),
	KeyPop: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "pop"),
	),
	KeyInvert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inv"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func digitBinding(d string) key.Binding {
	return key.NewBinding(
		key.WithKeys(d),
		key.WithHelp(d, "digit"),
	)
}
