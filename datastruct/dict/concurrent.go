package dict

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

/**
 * @Author: wanglei
 * @File: concurrent
 * @Version: 1.0.0
 * @Description: 基于分段锁map的线程安全dict
 * @Date: 2023/07/11 9:56
 */

// ConcurrentDict 线程安全的dict，分段锁由concurrent-map实现
type ConcurrentDict struct {
	m cmap.ConcurrentMap[string, interface{}]
}

func MakeConcurrentDict() *ConcurrentDict {
	return &ConcurrentDict{
		m: cmap.New[interface{}](),
	}
}

func (d *ConcurrentDict) Len() int {
	return d.m.Count()
}

func (d *ConcurrentDict) Get(key string) (val interface{}, exists bool) {
	return d.m.Get(key)
}

func (d *ConcurrentDict) Put(key string, val interface{}) (result int) {
	result = 1
	d.m.Upsert(key, val, func(exist bool, _ interface{}, newValue interface{}) interface{} {
		if exist {
			result = 0
		}
		return newValue
	})
	return result
}

func (d *ConcurrentDict) PutIfAbsent(key string, val interface{}) (result int) {
	if d.m.SetIfAbsent(key, val) {
		return 1
	}
	return 0
}

func (d *ConcurrentDict) Remove(key string) (result int) {
	if _, ok := d.m.Pop(key); ok {
		return 1
	}
	return 0
}

// ForEach 遍历的是快照，遍历过程中的修改不可见
func (d *ConcurrentDict) ForEach(consumer Consumer) {
	for item := range d.m.IterBuffered() {
		if !consumer(item.Key, item.Val) {
			break
		}
	}
}

func (d *ConcurrentDict) Keys() []string {
	return d.m.Keys()
}

func (d *ConcurrentDict) Clear() {
	d.m.Clear()
}
