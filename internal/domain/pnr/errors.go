package pnr

import "errors"

// PNRドメインのエラー定義
// エラー文字列はイベントコントラクトの既知エラー集合と一致させる
var (
	ErrNoActivePNR         = errors.New("NO ACTIVE PNR")
	ErrNoSegments          = errors.New("NO SEGMENTS")
	ErrElementNotFound     = errors.New("ELEMENT NOT FOUND")
	ErrNotAllowed          = errors.New("NOT ALLOWED")
	ErrTSTPresent          = errors.New("NOT ALLOWED - TST PRESENT")
	ErrTSTSegment          = errors.New("NOT ALLOWED - TST SEGMENT")
	ErrLastSegment         = errors.New("NOT ALLOWED - LAST SEGMENT")
	ErrLastAdult           = errors.New("NOT ALLOWED - LAST ADT")
	ErrInfantAssociated    = errors.New("NOT ALLOWED - INF ASSOCIATED")
	ErrNothingToCancel     = errors.New("NOTHING TO CANCEL")
	ErrEndPNRFirst         = errors.New("END PNR FIRST")
	ErrNoTicket            = errors.New("NO TICKET")
	ErrNoEmailAddress      = errors.New("NO EMAIL ADDRESS")
	ErrNoFormOfPayment     = errors.New("NO FORM OF PAYMENT")
	ErrTicketAlreadyIssued = errors.New("TICKET ALREADY ISSUED")
)
