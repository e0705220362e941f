package usecase

import "contacts/internal/domain/service"

// MailUsecase renders mail events into messages and sends them.
type MailUsecase interface {
	service.MailEventHandler
}
