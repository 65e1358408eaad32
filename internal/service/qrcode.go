package service

import (
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type QRGenerator interface {
	Generate(payload domain.QRPayload) ([]byte, error)
}

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(payload domain.QRPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(string(data), qrcode.Medium, size)
}

// ParseScan validates raw scanner output. Malformed payloads surface as
// ErrInvalidArgument instead of escaping the decode boundary.
func ParseScan(data string) (*domain.QRPayload, error) {
	var payload domain.QRPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("%w: scan payload is not valid JSON", domain.ErrInvalidArgument)
	}
	switch payload.Type {
	case domain.QRTypeMenuItem, domain.QRTypeOrder, domain.QRTypeTable:
	default:
		return nil, fmt.Errorf("%w: unknown scan payload type %q", domain.ErrInvalidArgument, payload.Type)
	}
	if payload.ID == "" {
		return nil, fmt.Errorf("%w: scan payload is missing an id", domain.ErrInvalidArgument)
	}
	return &payload, nil
}

var _ QRGenerator = DefaultQRGenerator{}
