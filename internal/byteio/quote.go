package byteio

import "strconv"

var ctlNames = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Quote renders a single byte for human consumption:
// - printable ASCII is single quoted, like 'A'
// - C0 controls, space, and delete use their mnemonic, like <NL> or <SP>
// - all other bytes are written in hex form, like 0xff
func Quote(b byte) string {
	switch {
	case b < 0x20:
		return "<" + ctlNames[b] + ">"
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b < 0x7f:
		return "'" + string(rune(b)) + "'"
	}
	return "0x" + strconv.FormatUint(uint64(b), 16)
}
