package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-pnr-workstation/internal/application"
)

// SessionHandler はワークステーションセッションのハンドラー
type SessionHandler struct {
	workstation WorkstationServiceInterface
}

// NewSessionHandler はSessionHandlerを作成する
func NewSessionHandler(workstation WorkstationServiceInterface) *SessionHandler {
	return &SessionHandler{workstation: workstation}
}

// SessionResponse はセッションのレスポンス
type SessionResponse struct {
	ID    string               `json:"id"`
	State *application.Session `json:"state"`
}

// ExecuteCommandRequest はコマンド実行リクエスト
type ExecuteCommandRequest struct {
	Command string `json:"command" validate:"required,max=200" example:"AN26DECALGPAR"`
}

// ExecuteCommandResponse はコマンド実行レスポンス
// イベントは端末に表示される順で返る
type ExecuteCommandResponse struct {
	Events []application.Event `json:"events"`
}

// Create はセッションを作成する
func (h *SessionHandler) Create(c echo.Context) error {
	id, state := h.workstation.CreateSession()
	return c.JSON(http.StatusCreated, SessionResponse{ID: id, State: state})
}

// GetByID はセッション状態を取得する
func (h *SessionHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	state, err := h.workstation.GetSession(id)
	if err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "セッションが見つかりません"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, SessionResponse{ID: id, State: state})
}

// Delete はセッションを破棄する
func (h *SessionHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.workstation.DeleteSession(id); err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "セッションが見つかりません"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ExecuteCommand は1コマンドを実行してイベント列を返す
// コマンド自体のエラーは200のerrorイベントとして返る（HTTPエラーではない）
func (h *SessionHandler) ExecuteCommand(c echo.Context) error {
	id := c.Param("id")

	var req ExecuteCommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	events, err := h.workstation.Execute(id, req.Command)
	if err != nil {
		if errors.Is(err, application.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "セッションが見つかりません"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if events == nil {
		events = []application.Event{}
	}
	return c.JSON(http.StatusOK, ExecuteCommandResponse{Events: events})
}
