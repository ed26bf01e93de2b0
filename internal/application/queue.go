package application

import (
	"errors"
	"fmt"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
)

var (
	errQueueNotFound = errors.New("QUEUE NOT FOUND")
	errNoActiveQueue = errors.New("NO ACTIVE QUEUE")
)

// キュー表示の1ページあたりの件数
const queuePageSize = 5

// handleQueuePlace はQP: 現在解決できるロケータを名前付きキューへ積む
// 既に積まれている場合は何もしない（冪等）
func (e *Engine) handleQueuePlace(s *Session, cmd command) []Event {
	locator := s.currentLocator()
	if locator == "" {
		return fail(errNoRecordedPNR)
	}

	entries := s.Queues[cmd.queue]
	for _, rl := range entries {
		if rl == locator {
			return []Event{NewEvent(fmt.Sprintf("PNR PLACED ON QUEUE %s", cmd.queue))}
		}
	}
	s.Queues[cmd.queue] = append(entries, locator)
	return []Event{NewEvent(fmt.Sprintf("PNR PLACED ON QUEUE %s", cmd.queue))}
}

// handleQueueDisplay はQD: ページ区切り付きの一覧表示
// 未知のキューと空のキューは区別される
func (e *Engine) handleQueueDisplay(s *Session, cmd command) []Event {
	entries, ok := s.Queues[cmd.queue]
	if !ok {
		return fail(errQueueNotFound)
	}

	var out emitter
	if len(entries) == 0 {
		out.emit("QUEUE EMPTY")
		return out.events
	}
	for i, rl := range entries {
		if i%queuePageSize == 0 {
			out.emit(fmt.Sprintf("QUEUE %s PAGE %d", cmd.queue, i/queuePageSize+1))
		}
		out.emit(rl)
	}
	return out.events
}

// handleQueueEnter はQE: キューモードに入る
func (e *Engine) handleQueueEnter(s *Session, cmd command) []Event {
	entries, ok := s.Queues[cmd.queue]
	if !ok {
		return fail(errQueueNotFound)
	}
	s.ActiveQueue = cmd.queue
	s.QueuePos = 0
	return []Event{NewEvent(fmt.Sprintf("QUEUE %s - %d PNRS", cmd.queue, len(entries)))}
}

// handleQueueNext はQN: キューの次のPNRを取り出して表示する
func (e *Engine) handleQueueNext(s *Session) []Event {
	if s.ActiveQueue == "" {
		return fail(errNoActiveQueue)
	}
	entries := s.Queues[s.ActiveQueue]
	if s.QueuePos >= len(entries) {
		return []Event{NewEvent("QUEUE EMPTY")}
	}

	locator := entries[s.QueuePos]
	snap, ok := s.Snapshots[locator]
	if !ok {
		return fail(errPNRNotFound)
	}
	s.QueuePos++
	s.restoreSnapshot(snap)

	var out emitter
	out.emit(fmt.Sprintf("PNR FROM QUEUE %s %s", s.ActiveQueue, locator))
	out.emitAll(e.renderLiveView(s))
	return out.events
}

// handleQueueRemove はQR: 直前にQNで取り出したロケータをキューから外す
func (e *Engine) handleQueueRemove(s *Session) []Event {
	if s.ActiveQueue == "" {
		return fail(errNoActiveQueue)
	}
	if s.QueuePos == 0 {
		return fail(pnr.ErrNothingToCancel)
	}
	entries := s.Queues[s.ActiveQueue]
	i := s.QueuePos - 1
	if i >= len(entries) {
		return fail(pnr.ErrNothingToCancel)
	}
	removed := entries[i]
	s.Queues[s.ActiveQueue] = append(entries[:i], entries[i+1:]...)
	s.QueuePos = i
	return []Event{NewEvent(fmt.Sprintf("PNR REMOVED FROM QUEUE %s %s", s.ActiveQueue, removed))}
}

// handleQueueStop はQS: キューモードを抜ける
func (e *Engine) handleQueueStop(s *Session) []Event {
	if s.ActiveQueue == "" {
		return fail(errNoActiveQueue)
	}
	queue := s.ActiveQueue
	s.ActiveQueue = ""
	s.QueuePos = 0
	return []Event{NewEvent(fmt.Sprintf("END OF QUEUE %s", queue))}
}
