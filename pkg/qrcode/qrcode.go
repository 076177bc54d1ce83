// Package qrcode renders the QR code printed on invoices.
package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrGenerate     = errors.New("failed to generate QR code")
)

const (
	DefaultSize = 256
	// MinSize fits a version 1 symbol (21 modules) plus its quiet zone at one
	// pixel per module.
	MinSize = 29
)

// RecoveryLevel is the share of the symbol that can be damaged and still
// scan. Higher levels make denser codes.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

// Encoder renders content as square PNG images of a fixed size.
type Encoder struct {
	size   int
	level  RecoveryLevel
	border bool
}

type Option func(*Encoder)

func WithRecovery(level RecoveryLevel) Option {
	return func(e *Encoder) { e.level = level }
}

// WithoutBorder drops the quiet zone, for views that draw their own margin.
func WithoutBorder() Option {
	return func(e *Encoder) { e.border = false }
}

// New returns an Encoder for size x size images. Non-positive sizes use
// DefaultSize; smaller sizes are raised to MinSize.
func New(size int, opts ...Option) *Encoder {
	switch {
	case size <= 0:
		size = DefaultSize
	case size < MinSize:
		size = MinSize
	}
	e := &Encoder{size: size, level: Medium, border: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) Size() int { return e.size }

// PNG encodes content.
func (e *Encoder) PNG(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, e.level)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	q.DisableBorder = !e.border
	png, err := q.PNG(e.size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI returns the PNG as a "data:image/png;base64,..." string for an
// <img src>.
func (e *Encoder) DataURI(content string) (string, error) {
	png, err := e.PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
