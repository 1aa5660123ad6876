package list

/**
 * @Author: wanglei
 * @File: list
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/11 18:16
 */

// 判断val是否为期望的值
type Expected func(val interface{}) bool

// 通过i，v进行遍历，返回false时中断遍历
type Consumer func(i int, v interface{}) bool

// List 有序、可变、可遍历的序列
type List interface {
	Len() int
	IsEmpty() bool
	Get(index int) (val interface{}, err error)
	Set(index int, val interface{}) error
	Contains(val interface{}) bool
	ContainsFunc(expected Expected) bool
	Count(val interface{}) int
	ForEach(consumer Consumer)
	Items() []interface{}
}

var _ List = (*Sll)(nil)
