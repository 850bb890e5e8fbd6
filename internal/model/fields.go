package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Price accepts a JSON number, a numeric string, "" or null. Anything that
// is not a number decodes as zero.
type Price struct {
	decimal.Decimal
}

func (p *Price) UnmarshalJSON(data []byte) error {
	p.Decimal = parseDecimal(data)
	return nil
}

// Quantity is a stock count. Fractional values ("3.0") and numeric strings
// ("5") are truncated to their integer part; anything else is zero.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity(parseDecimal(data).IntPart())
	return nil
}

func parseDecimal(data []byte) decimal.Decimal {
	s := string(bytes.TrimSpace(data))
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// UnmarshalJSON leaves StoreName unset when "user" is not an object or
// store_name is not a string, so StoreName() reports "N/A".
func (s *Store) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	type plain Store
	var v plain
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(data, &v); err != nil && !errors.As(err, &typeErr) {
		return err
	}
	*s = Store(v)
	return nil
}
