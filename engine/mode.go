package engine

// Mode records which of the two eERC deployment styles the engine is
// building witnesses for (spec.md Glossary "Converter mode"). MINT and BURN
// are standalone-only; WITHDRAW and Deposit are converter-only.
type Mode int

const (
	Standalone Mode = iota
	Converter
)

func (m Mode) String() string {
	if m == Converter {
		return "converter"
	}
	return "standalone"
}
