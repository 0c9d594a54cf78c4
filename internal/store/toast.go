package store

import (
	"time"

	"plum/internal/pkg/id"
)

// Severity 通知级别
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Toast 瞬态通知
// 队列按插入顺序保持，不重排；ID 使用 UUID 避免同毫秒创建时的碰撞
type Toast struct {
	ID       string
	Message  string
	Severity Severity
}

// ShowToast 入队一条通知并安排到期自动移除，返回通知ID
func (s *Store) ShowToast(message string, severity Severity) string {
	toastID := id.New()

	s.mu.Lock()
	s.toasts = append(s.toasts, Toast{ID: toastID, Message: message, Severity: severity})
	s.toastTimers[toastID] = time.AfterFunc(s.toastTTL, func() {
		s.RemoveToast(toastID)
	})
	s.mu.Unlock()

	s.publish()
	return toastID
}

// RemoveToast 移除通知并取消其到期计时器
// 幂等：移除不存在的ID是 no-op，不会误删复用ID的其他通知
func (s *Store) RemoveToast(toastID string) {
	s.mu.Lock()
	idx := -1
	for i, t := range s.toasts {
		if t.ID == toastID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.toasts = append(s.toasts[:idx], s.toasts[idx+1:]...)
	if t, ok := s.toastTimers[toastID]; ok {
		t.Stop()
		delete(s.toastTimers, toastID)
	}
	s.mu.Unlock()

	s.publish()
}
