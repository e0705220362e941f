package qrcode

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"contacts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact() *entity.Contact {
	notes := "met at PyCon; likes tea"

	return &entity.Contact{
		ID:          1,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+44 20 7946 0000",
		Birthday:    time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC),
		Notes:       &notes,
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
	}{
		{"Low error correction", 256, "L", 256},
		{"Medium error correction", 128, "medium", 128},
		{"High error correction", 256, "Q", 256},
		{"Highest error correction", 256, "highest", 256},
		{"Default size and level", 0, "invalid", defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(tt.size, tt.errorCorrectionLevel).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, svc.size)
		})
	}
}

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GenerateContactQR(testContact())
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestVCard(t *testing.T) {
	card := VCard(testContact())

	assert.Contains(t, card, "BEGIN:VCARD\r\nVERSION:3.0\r\n")
	assert.Contains(t, card, "N:Lovelace;Ada;;;\r\n")
	assert.Contains(t, card, "FN:Ada Lovelace\r\n")
	assert.Contains(t, card, "EMAIL;TYPE=INTERNET:ada@example.com\r\n")
	assert.Contains(t, card, "TEL;TYPE=CELL:+44 20 7946 0000\r\n")
	assert.Contains(t, card, "BDAY:1815-12-10\r\n")
	assert.Contains(t, card, `NOTE:met at PyCon\; likes tea`)
	assert.True(t, len(card) > 0 && card[len(card)-len("END:VCARD\r\n"):] == "END:VCARD\r\n")
}

func TestVCard_OmitsEmptyFields(t *testing.T) {
	card := VCard(&entity.Contact{FirstName: "Solo"})

	assert.Contains(t, card, "FN:Solo\r\n")
	assert.NotContains(t, card, "EMAIL")
	assert.NotContains(t, card, "BDAY")
	assert.NotContains(t, card, "NOTE")
}
