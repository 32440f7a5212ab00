package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbridge/pkg/record"
)

// List fields arrive PHP-serialized: `a:2:{i:0;s:3:"foo";i:1;s:3:"bar";}`
// for flat lists, with one nested array per row for multi-column lists.
// decodeSerializedArray handles exactly that subset: arrays of scalars
// become []string, arrays of scalar-valued arrays become []record.Row.

type serializedPair struct {
	key   string
	value any // string or []serializedPair
}

func decodeSerializedArray(input string) (record.Value, error) {
	dec := &serializedDecoder{input: input}
	pairs, err := dec.parseArray()
	if err != nil {
		return nil, err
	}
	if dec.pos != len(dec.input) {
		return nil, fmt.Errorf("normalize: trailing data after serialized array")
	}
	return pairsToValue(pairs)
}

func pairsToValue(pairs []serializedPair) (record.Value, error) {
	nested := false
	for _, pair := range pairs {
		if _, ok := pair.value.([]serializedPair); ok {
			nested = true
			break
		}
	}

	if !nested {
		seq := make([]string, 0, len(pairs))
		for _, pair := range pairs {
			seq = append(seq, pair.value.(string))
		}
		return seq, nil
	}

	rows := make([]record.Row, 0, len(pairs))
	for _, pair := range pairs {
		inner, ok := pair.value.([]serializedPair)
		if !ok {
			return nil, fmt.Errorf("normalize: mixed scalar and row entries in serialized list")
		}
		row := make(record.Row, len(inner))
		for _, cell := range inner {
			text, ok := cell.value.(string)
			if !ok {
				return nil, fmt.Errorf("normalize: serialized list nests deeper than one row level")
			}
			row[cell.key] = text
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type serializedDecoder struct {
	input string
	pos   int
}

func (d *serializedDecoder) parseArray() ([]serializedPair, error) {
	count, err := d.parseHeader('a')
	if err != nil {
		return nil, err
	}
	if err := d.expect("{"); err != nil {
		return nil, err
	}

	pairs := make([]serializedPair, 0, count)
	for i := 0; i < count; i++ {
		key, err := d.parseKey()
		if err != nil {
			return nil, err
		}
		value, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, serializedPair{key: key, value: value})
	}

	if err := d.expect("}"); err != nil {
		return nil, err
	}
	return pairs, nil
}

// parseHeader consumes `<tag>:<n>:` and returns n.
func (d *serializedDecoder) parseHeader(tag byte) (int, error) {
	if d.pos >= len(d.input) || d.input[d.pos] != tag {
		return 0, fmt.Errorf("normalize: expected %q at offset %d", string(tag), d.pos)
	}
	d.pos++
	if err := d.expect(":"); err != nil {
		return 0, err
	}
	n, err := d.parseDigits()
	if err != nil {
		return 0, err
	}
	if err := d.expect(":"); err != nil {
		return 0, err
	}
	return n, nil
}

func (d *serializedDecoder) parseKey() (string, error) {
	if d.pos >= len(d.input) {
		return "", fmt.Errorf("normalize: truncated serialized array")
	}
	switch d.input[d.pos] {
	case 'i':
		d.pos++
		if err := d.expect(":"); err != nil {
			return "", err
		}
		n, err := d.parseDigits()
		if err != nil {
			return "", err
		}
		if err := d.expect(";"); err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case 's':
		return d.parseString()
	default:
		return "", fmt.Errorf("normalize: unsupported key type %q", string(d.input[d.pos]))
	}
}

func (d *serializedDecoder) parseValue() (any, error) {
	if d.pos >= len(d.input) {
		return nil, fmt.Errorf("normalize: truncated serialized array")
	}
	switch d.input[d.pos] {
	case 's':
		return d.parseString()
	case 'a':
		return d.parseArray()
	case 'i', 'd':
		d.pos++
		if err := d.expect(":"); err != nil {
			return nil, err
		}
		start := d.pos
		for d.pos < len(d.input) && d.input[d.pos] != ';' {
			d.pos++
		}
		text := d.input[start:d.pos]
		if err := d.expect(";"); err != nil {
			return nil, err
		}
		return text, nil
	case 'b':
		d.pos++
		if err := d.expect(":"); err != nil {
			return nil, err
		}
		n, err := d.parseDigits()
		if err != nil {
			return nil, err
		}
		if err := d.expect(";"); err != nil {
			return nil, err
		}
		return strconv.Itoa(n), nil
	case 'N':
		d.pos++
		if err := d.expect(";"); err != nil {
			return nil, err
		}
		return "", nil
	default:
		return nil, fmt.Errorf("normalize: unsupported value type %q", string(d.input[d.pos]))
	}
}

// parseString consumes `s:<bytelen>:"...";`. The length is a byte count, so
// multibyte content is sliced, not scanned for the closing quote.
func (d *serializedDecoder) parseString() (string, error) {
	length, err := d.parseHeader('s')
	if err != nil {
		return "", err
	}
	if err := d.expect(`"`); err != nil {
		return "", err
	}
	if d.pos+length > len(d.input) {
		return "", fmt.Errorf("normalize: string length %d exceeds input", length)
	}
	text := d.input[d.pos : d.pos+length]
	d.pos += length
	if err := d.expect(`";`); err != nil {
		return "", err
	}
	return text, nil
}

func (d *serializedDecoder) parseDigits() (int, error) {
	start := d.pos
	for d.pos < len(d.input) && d.input[d.pos] >= '0' && d.input[d.pos] <= '9' {
		d.pos++
	}
	if d.pos == start {
		return 0, fmt.Errorf("normalize: expected digits at offset %d", start)
	}
	return strconv.Atoi(d.input[start:d.pos])
}

func (d *serializedDecoder) expect(token string) error {
	if !strings.HasPrefix(d.input[d.pos:], token) {
		return fmt.Errorf("normalize: expected %q at offset %d", token, d.pos)
	}
	d.pos += len(token)
	return nil
}
