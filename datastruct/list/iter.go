package list

/**
 * @Author: wanglei
 * @File: iter
 * @Version: 1.0.0
 * @Description: Sll的遍历
 * @Date: 2023/09/05 14:37
 */

// Iter 将游标重置到0并返回s，之后用Next逐个取item。
//
// 游标保存在节点上而不是独立的迭代器里，对同一个引用交替进行的两次遍历
// 会共享同一个游标。需要独立遍历时使用ForEach或Items。
func (s *Sll) Iter() *Sll {
	s.index = 0
	return s
}

// Next 返回游标处的item并前进一位。遍历结束时返回false，同时将游标重置到0。
func (s *Sll) Next() (interface{}, bool) {
	n, err := s.node(s.index)
	if err != nil {
		s.index = 0
		return nil, false
	}
	s.index++
	return n.item, true
}

// ForEach 依次遍历item，consumer返回false时中断
func (s *Sll) ForEach(consumer Consumer) {
	i := 0
	for n := s; n != nil && n.held; n = n.next {
		if !consumer(i, n.item) {
			return
		}
		i++
	}
}
