package service

import "contacts/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactQR renders the contact as a vCard QR code in PNG format
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}
