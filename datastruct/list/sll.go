package list

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

/**
 * @Author: wanglei
 * @File: sll
 * @Version: 1.0.0
 * @Description: 多态单链表，每个节点本身就是一个链表
 * @Date: 2023/09/04 10:02
 */

// Sll 单链表的节点。节点和链表是同一个值：持有某个节点的引用就是持有
// 从该节点开始的子链表。
//
// 节点有两种状态：未初始化(空链表)，或者持有一个item以及指向后继的next。
// 链表以next为nil结束，空节点不会作为其他节点的后继出现。
//
// Sll不是并发安全的，并发访问需要由调用方加锁。
type Sll struct {
	item interface{}
	next *Sll
	held bool
	// Iter/Next使用的游标，保存在节点上，同一引用上的两次遍历会互相干扰
	index int
}

// Make 按顺序创建包含items的链表，没有items时返回空节点
func Make(items ...interface{}) *Sll {
	s := &Sll{}
	return s.Extend(items...)
}

func (s *Sll) IsEmpty() bool {
	return !s.held
}

func (s *Sll) Len() int {
	l := 0
	for n := s; n != nil && n.held; n = n.next {
		l++
	}
	return l
}

// successor 返回s的后继。后继是空节点时视为链表结束：
// 被Concat链接的链表清空后，它的节点仍然是其他链表的后继
func (s *Sll) successor() *Sll {
	if s.next != nil && !s.next.held {
		return nil
	}
	return s.next
}

// cutSuccessor 修改链表前断开指向空节点的后继
func (s *Sll) cutSuccessor() *Sll {
	if s.next != nil && !s.next.held {
		s.next = nil
	}
	return s.next
}

// walk 从s向后前进i个节点，走出链表尾部时返回nil
func (s *Sll) walk(i int) *Sll {
	n := s
	for ; i > 0 && n != nil; i-- {
		n = n.successor()
	}
	return n
}

// node 返回下标i处持有item的节点
func (s *Sll) node(i int) (*Sll, error) {
	if i >= 0 {
		if n := s.walk(i); n != nil && n.held {
			return n, nil
		}
	}
	return nil, newIndexError(i, s.Len())
}

func (s *Sll) Get(index int) (interface{}, error) {
	n, err := s.node(index)
	if err != nil {
		return nil, err
	}
	return n.item, nil
}

// Set 覆盖下标index处的item
func (s *Sll) Set(index int, val interface{}) error {
	n, err := s.node(index)
	if err != nil {
		return err
	}
	n.item = val
	return nil
}

// Insert 与Set相同，覆盖而不是插入
func (s *Sll) Insert(index int, val interface{}) error {
	return s.Set(index, val)
}

// Sublist 返回从下标i开始的子链表，与原链表共享节点。
// Sublist(0)总是返回s本身，即使s为空。
func (s *Sll) Sublist(i int) (*Sll, error) {
	if i == 0 {
		return s, nil
	}
	return s.node(i)
}

func (s *Sll) Contains(val interface{}) bool {
	return s.Find(val) != nil
}

func (s *Sll) ContainsFunc(expected Expected) bool {
	return s.FindFunc(expected) != nil
}

// Find 返回第一个等于item的节点开始的子链表，找不到时返回nil
func (s *Sll) Find(item interface{}) *Sll {
	return s.FindFunc(func(val interface{}) bool {
		return equals(val, item)
	})
}

func (s *Sll) FindFunc(expected Expected) *Sll {
	for n := s; n != nil && n.held; n = n.next {
		if expected(n.item) {
			return n
		}
	}
	return nil
}

func (s *Sll) Count(val interface{}) int {
	count := 0
	for n := s; n != nil && n.held; n = n.next {
		if equals(n.item, val) {
			count++
		}
	}
	return count
}

// Last 返回最后一个item，空链表返回false
func (s *Sll) Last() (interface{}, bool) {
	n := s.LastSublist()
	if n == nil {
		return nil, false
	}
	return n.item, true
}

// LastSublist 返回最后一个节点，空链表返回nil
func (s *Sll) LastSublist() *Sll {
	if !s.held {
		return nil
	}
	n := s
	for next := n.successor(); next != nil; next = n.successor() {
		n = next
	}
	return n
}

// Items 按顺序返回所有item
func (s *Sll) Items() []interface{} {
	items := make([]interface{}, 0)
	for n := s; n != nil && n.held; n = n.next {
		items = append(items, n.item)
	}
	return items
}

// Extend 在链表尾部追加items，原地修改并返回s本身。
// s为空时items[0]直接写入s。
func (s *Sll) Extend(items ...interface{}) *Sll {
	if len(items) == 0 {
		return s
	}
	n := s
	if !n.held {
		n.item, n.next, n.held = items[0], nil, true
		items = items[1:]
	}
	for n.cutSuccessor() != nil {
		n = n.next
	}
	for _, item := range items {
		n.next = &Sll{item: item, held: true}
		n = n.next
	}
	return s
}

func (s *Sll) Append(item interface{}) *Sll {
	return s.Extend(item)
}

// Prepend 在链表头部加入items，返回新的头节点，s本身不变并成为新链表的尾部。
// 调用方需要改用返回值作为链表。
func (s *Sll) Prepend(items ...interface{}) *Sll {
	h := s
	for i := len(items) - 1; i >= 0; i-- {
		next := h
		if !next.held {
			next = nil
		}
		h = &Sll{item: items[i], next: next, held: true}
	}
	return h
}

// RemoveAt 删除下标i处的item，返回头节点。
// i为0时后继节点的内容被移动到头节点，以保持调用方持有的引用有效。
func (s *Sll) RemoveAt(i int) (*Sll, error) {
	length := s.Len()
	if i < 0 || i >= length {
		return nil, newIndexError(i, length)
	}

	switch i {
	case 0:
		if s.cutSuccessor() == nil {
			s.item, s.held = nil, false
		} else {
			succ := s.next
			s.item, s.next = succ.item, succ.successor()
		}
	case 1:
		s.next = s.next.successor()
	default:
		pred := s.walk(i - 1)
		pred.next = pred.next.successor()
	}
	return s, nil
}

// Reverse 原地反转链表，返回新的头节点(原来的最后一个节点)
func (s *Sll) Reverse() *Sll {
	if !s.held || s.cutSuccessor() == nil {
		return s
	}
	var prev *Sll
	cur := s
	for cur != nil {
		next := cur.successor()
		cur.next = prev
		prev, cur = cur, next
	}
	return prev
}

// Reversed 返回反转后的新链表，不修改s
func (s *Sll) Reversed() *Sll {
	acc := Make()
	for n := s; n != nil && n.held; n = n.next {
		acc = acc.Prepend(n.item)
	}
	return acc
}

// Concat 将other直接链接到s的尾部，不复制节点：之后通过other做的修改
// 在s中可见，反之亦然。
//
// s为空时s复制other头节点的item，共享从other的第二个节点开始：
// 之后对other第一个item的修改在s中不可见，other只有一个item时两者不共享节点。
//
// 两个链表共享节点时(Overlaps)链接会形成环，调用方需要先检查。
func (s *Sll) Concat(other *Sll) *Sll {
	if other == nil || !other.held {
		return s
	}
	// s可能是other尾部已经清空的后继
	other.LastSublist().cutSuccessor()
	last := s.LastSublist()
	if last == nil {
		s.item, s.next, s.held = other.item, other.successor(), true
		return s
	}
	last.cutSuccessor()
	last.next = other
	return s
}

// Overlaps 判断两个链表是否共享节点。无环的单链表共享节点时一定共享尾节点。
func (s *Sll) Overlaps(other *Sll) bool {
	if other == nil {
		return false
	}
	last := s.LastSublist()
	return last != nil && last == other.LastSublist()
}

// Repeat 返回items重复times次的链表。
// times为0时返回新的空链表，为1时返回s本身，否则将items向s前部添加times-1次。
// times不是非负整数时返回TypeError。
func (s *Sll) Repeat(times interface{}) (*Sll, error) {
	n, ok := toCount(times)
	if !ok {
		return nil, &TypeError{Value: times}
	}
	switch n {
	case 0:
		return Make(), nil
	case 1:
		return s, nil
	}

	items := s.Items()
	h := s
	for i := 1; i < n; i++ {
		h = h.Prepend(items...)
	}
	return h, nil
}

// toCount 接受任意整数类型的非负值
func toCount(v interface{}) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 || n > int64(math.MaxInt) {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > uint64(math.MaxInt) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Equals 类型相同并且item依次相等时返回true，other不是*Sll时返回false
func (s *Sll) Equals(other interface{}) bool {
	o, ok := other.(*Sll)
	if !ok || o == nil {
		return false
	}
	a, b := s, o
	for ; a != nil && a.held && b != nil && b.held; a, b = a.next, b.next {
		if !equals(a.item, b.item) {
			return false
		}
	}
	return (a == nil || !a.held) && (b == nil || !b.held)
}

func (s *Sll) String() string {
	var b strings.Builder
	b.WriteString("Sll[")
	for n := s; n != nil && n.held; n = n.next {
		if n != s {
			b.WriteString(", ")
		}
		b.WriteString(repr(n.item))
	}
	b.WriteByte(']')
	return b.String()
}

func repr(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []byte:
		return strconv.Quote(string(val))
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// equals item的值比较，*Sll按Equals比较，其他类型使用reflect.DeepEqual
func equals(a, b interface{}) bool {
	if sa, ok := a.(*Sll); ok && sa != nil {
		return sa.Equals(b)
	}
	// 可比较的struct里的interface字段可能持有slice，不能用==
	return reflect.DeepEqual(a, b)
}
