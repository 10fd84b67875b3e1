package diag

// Severity: важность диагностики; порядок значений используется при сортировке Bag.
type Severity uint8

const (
	SevInfo    Severity = iota // подсказки, не влияют на код возврата
	SevWarning                 // предупреждения (например, неизвестный ключ в pawnc.toml)
	SevError                   // лексические и синтаксические ошибки
)

// String returns the upper-case name used by the pretty and JSON renderers.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Label is the lower-case form used in one-line output.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}
