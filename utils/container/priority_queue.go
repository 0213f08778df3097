package container

import "container/heap"

// item 优先队列中单个元素
type item[T any] struct {
	Value    T       // 元素的值
	Priority float64 // 元素的优先级（越小越先弹出）
	index    int     // 项在堆中的索引，由 heap.Interface 方法维护
}

// priorityQueue 小顶堆，实现了 heap.Interface
type priorityQueue[T any] []*item[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[T]) Push(x any) {
	n := len(*pq)
	item := x.(*item[T])
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.index = -1 // 为了安全起见
	*pq = old[0 : n-1]
	return item
}

// TopK 保留优先级最大的k个元素
// 功能：流式接收元素，任意时刻只保留优先级最大的k个
// 说明：内部是容量为k的小顶堆，堆顶是当前保留元素中优先级最小的一个；
// 优先级相同时先到者优先保留
type TopK[T any] struct {
	k     int
	queue priorityQueue[T]
}

// NewTopK 创建容量为k的TopK，k<=0时不保留任何元素
func NewTopK[T any](k int) *TopK[T] {
	if k < 0 {
		k = 0
	}
	return &TopK[T]{k: k, queue: make(priorityQueue[T], 0, k)}
}

// Len 当前保留的元素数量
func (t *TopK[T]) Len() int {
	return len(t.queue)
}

// Offer 提交一个元素
// 参数：value-元素值，priority-优先级
// 返回：元素是否被保留
// 算法说明：
// 1. 未满时直接入堆
// 2. 已满且优先级大于堆顶时替换堆顶并下沉
// 3. 否则丢弃
func (t *TopK[T]) Offer(value T, priority float64) bool {
	if t.k == 0 {
		return false
	}
	if len(t.queue) < t.k {
		heap.Push(&t.queue, &item[T]{Value: value, Priority: priority})
		return true
	}
	if priority <= t.queue[0].Priority {
		return false
	}
	t.queue[0].Value = value
	t.queue[0].Priority = priority
	heap.Fix(&t.queue, 0)
	return true
}

// Drain 按优先级从大到小取出全部元素并清空
func (t *TopK[T]) Drain() []T {
	res := make([]T, len(t.queue))
	for i := len(res) - 1; i >= 0; i-- {
		res[i] = heap.Pop(&t.queue).(*item[T]).Value
	}
	return res
}
