package service

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"image/png"
	"net/url"
	"strconv"
	"strings"

	"vendorguard/config"
	"vendorguard/internal/core/ports"

	"github.com/skip2/go-qrcode"
)

// Literal fallbacks applied when a payment link omits a parameter.
const (
	defaultLinkAmount = "0.00"
	defaultLinkItem   = "Secure Asset"
	defaultLinkLock   = "24"
)

// PaylinkServiceImpl implements ports.PaylinkService.
type PaylinkServiceImpl struct {
	cfg config.PaylinkConfig
}

// NewPaylinkService creates a new PaylinkServiceImpl.
func NewPaylinkService(cfg config.PaylinkConfig) *PaylinkServiceImpl {
	return &PaylinkServiceImpl{cfg: cfg}
}

// Generate builds a shareable checkout link with a short random id and a
// QR code image of the link.
func (s *PaylinkServiceImpl) Generate(amount, item, lockDuration string) (*ports.PaymentLink, error) {
	id, err := linkID()
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/pay/%s?amount=%s&item=%s&lock=%s",
		strings.TrimSuffix(s.cfg.BaseURL, "/"), id, amount, url.QueryEscape(item), lockDuration)

	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(s.cfg.QRSize)); err != nil {
		return nil, err
	}

	return &ports.PaymentLink{
		ID:      id,
		URL:     link,
		QRImage: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Parse extracts checkout parameters from a payment link, substituting the
// literal defaults for anything missing. It never fails: an unparseable URL
// yields a fully defaulted set of parameters.
func (s *PaylinkServiceImpl) Parse(rawURL string) ports.LinkParams {
	params := ports.LinkParams{
		Amount:       defaultLinkAmount,
		Item:         defaultLinkItem,
		LockDuration: defaultLinkLock,
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return params
	}

	q := u.Query()
	if v := q.Get("amount"); v != "" {
		params.Amount = v
	}
	if v := q.Get("item"); v != "" {
		params.Item = v
	}
	if v := q.Get("lock"); v != "" {
		params.LockDuration = v
	}
	return params
}

// linkID returns a short base36 identifier.
func linkID() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	id := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	if len(id) > 6 {
		id = id[:6]
	}
	return id, nil
}
