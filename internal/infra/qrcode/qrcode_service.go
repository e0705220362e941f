package qrcode

import (
	"fmt"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
// Levels are "low", "medium", "high" or "highest" (or L/M/Q/H); anything else means medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR encodes the contact as a vCard 3.0 and renders it as PNG
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	qrCode, err := qrcode.New(VCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// VCard renders the contact as a vCard 3.0 document.
func VCard(contact *entity.Contact) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	fmt.Fprintf(&b, "N:%s;%s;;;\r\n", escapeVCard(contact.LastName), escapeVCard(contact.FirstName))
	fmt.Fprintf(&b, "FN:%s\r\n", escapeVCard(strings.TrimSpace(contact.FirstName+" "+contact.LastName)))
	if contact.Email != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET:%s\r\n", escapeVCard(contact.Email))
	}
	if contact.PhoneNumber != "" {
		fmt.Fprintf(&b, "TEL;TYPE=CELL:%s\r\n", escapeVCard(contact.PhoneNumber))
	}
	if !contact.Birthday.IsZero() {
		fmt.Fprintf(&b, "BDAY:%s\r\n", contact.Birthday.Format("2006-01-02"))
	}
	if contact.Notes != nil && *contact.Notes != "" {
		fmt.Fprintf(&b, "NOTE:%s\r\n", escapeVCard(*contact.Notes))
	}
	b.WriteString("END:VCARD\r\n")

	return b.String()
}

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}
