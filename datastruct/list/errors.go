package list

import "fmt"

/**
 * @Author: wanglei
 * @File: errors
 * @Version: 1.0.0
 * @Description: Sll的错误类型
 * @Date: 2023/09/04 10:21
 */

// IndexError 下标为负数或者超出链表长度
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

func newIndexError(index, length int) *IndexError {
	return &IndexError{Index: index, Len: length}
}

// TypeError 重复次数不是非负整数
type TypeError struct {
	Value interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("multiplier must be a non-negative integer but is: %v", e.Value)
}
