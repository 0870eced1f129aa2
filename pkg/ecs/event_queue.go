package ecs

// EventQueue 单帧事件队列
//
// 宿主在任意时刻 Send 事件，消费系统每帧调用一次 Drain 取走全部待处理事件。
// 不消费的系统也应调用 Drain，避免事件在队列中无限堆积。
type EventQueue[T any] struct {
	pending []T
	sent    uint64
}

// NewEventQueue 创建空事件队列
func NewEventQueue[T any]() *EventQueue[T] {
	return &EventQueue[T]{
		pending: make([]T, 0),
	}
}

// Send 追加一个事件
func (q *EventQueue[T]) Send(event T) {
	q.pending = append(q.pending, event)
	q.sent++
}

// Drain 取走并返回所有待处理事件，队列随后为空
func (q *EventQueue[T]) Drain() []T {
	if len(q.pending) == 0 {
		return nil
	}
	events := q.pending
	q.pending = make([]T, 0, cap(events))
	return events
}

// Len 返回待处理事件数量
func (q *EventQueue[T]) Len() int {
	return len(q.pending)
}

// TotalSent 返回队列创建以来发送过的事件总数
func (q *EventQueue[T]) TotalSent() uint64 {
	return q.sent
}
