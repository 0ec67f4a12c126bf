package db

import (
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/shopspring/decimal"
)

func init() {
	meddler.Register("address", hexMeddler[common.Address]{parse: common.HexToAddress})
	meddler.Register("hash", hexMeddler[common.Hash]{parse: common.HexToHash})
	meddler.Register("decimal", DecimalMeddler{})
}

type hexValue interface {
	comparable
	Hex() string
}

// hexMeddler stores go-ethereum fixed-size values as hex strings.
// NULL columns read back as the zero value, or nil for pointer fields.
type hexMeddler[T hexValue] struct {
	parse func(string) T
}

func (h hexMeddler[T]) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(sql.NullString), nil
}

func (h hexMeddler[T]) PostRead(fieldAddr, scanTarget interface{}) error {
	ns, ok := scanTarget.(*sql.NullString)
	if !ok {
		return fmt.Errorf("expected *sql.NullString, got %T", scanTarget)
	}

	switch ptr := fieldAddr.(type) {
	case **T:
		if !ns.Valid {
			*ptr = nil
			return nil
		}
		v := h.parse(ns.String)
		*ptr = &v
	case *T:
		if !ns.Valid {
			var zero T
			*ptr = zero
			return nil
		}
		*ptr = h.parse(ns.String)
	default:
		return fmt.Errorf("unsupported field type %T", fieldAddr)
	}

	return nil
}

func (h hexMeddler[T]) PreWrite(field interface{}) (saveValue interface{}, err error) {
	switch v := field.(type) {
	case *T:
		if v == nil {
			return nil, nil
		}
		return (*v).Hex(), nil
	case T:
		return v.Hex(), nil
	default:
		return nil, fmt.Errorf("unsupported field type %T", field)
	}
}

// DecimalMeddler stores arbitrary precision token amounts as base-10 strings.
type DecimalMeddler struct{}

func (d DecimalMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(sql.NullString), nil
}

func (d DecimalMeddler) PostRead(fieldAddr, scanTarget interface{}) error {
	ns, ok := scanTarget.(*sql.NullString)
	if !ok {
		return fmt.Errorf("expected *sql.NullString, got %T", scanTarget)
	}

	ptr, ok := fieldAddr.(*decimal.Decimal)
	if !ok {
		return fmt.Errorf("expected *decimal.Decimal, got %T", fieldAddr)
	}

	if !ns.Valid {
		*ptr = decimal.Zero
		return nil
	}

	v, err := decimal.NewFromString(ns.String)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", ns.String, err)
	}
	*ptr = v
	return nil
}

func (d DecimalMeddler) PreWrite(field interface{}) (saveValue interface{}, err error) {
	switch v := field.(type) {
	case decimal.Decimal:
		return v.String(), nil
	case *decimal.Decimal:
		if v == nil {
			return nil, nil
		}
		return v.String(), nil
	default:
		return nil, fmt.Errorf("expected decimal.Decimal, got %T", field)
	}
}
