package ipxact

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Integer is a non-negative IP-XACT scalar. Descriptions written by different
// tools use plain decimal, C style hexadecimal or Verilog sized literals, so all
// of them are accepted.
type Integer uint64

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}
	*i, err = ParseInteger(v)
	return err
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) (err error) {
	*i, err = ParseInteger(attr.Value)
	return err
}

// ParseInteger parses 42, 0x2a, 0X2A, 8'h2a, 'h2a, 'd42 and 'b101010.
func ParseInteger(s string) (Integer, error) {
	v := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if len(v) == 0 {
		return 0, fmt.Errorf("empty integer")
	}

	base := 10
	if idx := strings.IndexByte(v, '\''); idx >= 0 {
		// Verilog literal, the size prefix is informational
		if idx+1 >= len(v) {
			return 0, fmt.Errorf("malformed integer %q", s)
		}
		switch v[idx+1] {
		case 'h', 'H':
			base = 16
		case 'd', 'D':
			base = 10
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		default:
			return 0, fmt.Errorf("malformed integer %q", s)
		}
		v = v[idx+2:]
	} else if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		base = 16
		v = v[2:]
	}

	value, err := strconv.ParseUint(v, base, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed integer %q: %w", s, err)
	}
	return Integer(value), nil
}
