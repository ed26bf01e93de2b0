package handler

import (
	"github.com/sanosuguru/go-pnr-workstation/internal/application"
)

// WorkstationServiceInterface はワークステーションサービスのインターフェース
type WorkstationServiceInterface interface {
	CreateSession() (string, *application.Session)
	GetSession(id string) (*application.Session, error)
	DeleteSession(id string) error
	Execute(id, command string) ([]application.Event, error)
}
