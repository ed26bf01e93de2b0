package application

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/metrics"
)

// ErrSessionNotFound はセッションが存在しないことを表す
var ErrSessionNotFound = errors.New("セッションが見つかりません")

// WorkstationService は複数のワークステーションセッションを管理する
// セッション内のコマンド実行は1件ずつ直列化される
type WorkstationService struct {
	engine  *Engine
	metrics *metrics.Metrics

	mu       sync.RWMutex
	sessions map[string]*workstationSession
}

type workstationSession struct {
	mu    sync.Mutex
	state *Session
}

// NewWorkstationService はWorkstationServiceを作成する
// mはnil可（メトリクスなしで動く）
func NewWorkstationService(engine *Engine, m *metrics.Metrics) *WorkstationService {
	return &WorkstationService{
		engine:   engine,
		metrics:  m,
		sessions: map[string]*workstationSession{},
	}
}

// CreateSession は新しいセッションを払い出す
func (w *WorkstationService) CreateSession() (string, *Session) {
	id := uuid.NewString()
	ws := &workstationSession{state: NewSession()}

	w.mu.Lock()
	w.sessions[id] = ws
	w.mu.Unlock()

	if w.metrics != nil {
		w.metrics.ActiveSessions.Inc()
	}
	return id, ws.state
}

// GetSession はセッション状態を返す
func (w *WorkstationService) GetSession(id string) (*Session, error) {
	ws, err := w.session(id)
	if err != nil {
		return nil, err
	}
	return ws.state, nil
}

// DeleteSession はセッションを破棄する
func (w *WorkstationService) DeleteSession(id string) error {
	w.mu.Lock()
	_, ok := w.sessions[id]
	if ok {
		delete(w.sessions, id)
	}
	w.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if w.metrics != nil {
		w.metrics.ActiveSessions.Dec()
	}
	return nil
}

// Execute は1コマンドを実行してイベント列を返す
func (w *WorkstationService) Execute(id, raw string) ([]Event, error) {
	ws, err := w.session(id)
	if err != nil {
		return nil, err
	}

	ws.mu.Lock()
	start := time.Now()
	events := w.engine.Process(ws.state, raw)
	ws.mu.Unlock()

	if w.metrics != nil {
		kind := lex(raw).op.String()
		outcome := "ok"
		for _, ev := range events {
			if ev.Kind == KindError {
				outcome = "error"
				break
			}
		}
		w.metrics.CommandsTotal.WithLabelValues(kind, outcome).Inc()
		w.metrics.CommandDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
	return events, nil
}

func (w *WorkstationService) session(id string) (*workstationSession, error) {
	w.mu.RLock()
	ws, ok := w.sessions[id]
	w.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ws, nil
}
