package dict

/**
 * @Author: wanglei
 * @File: simple
 * @Version: 1.0.0
 * @Description: 非线程安全的dict，由调用方加锁
 * @Date: 2023/07/11 12:22
 */

type SimpleDict struct {
	m map[string]interface{}
}

func MakeSimpleDict() *SimpleDict {
	return &SimpleDict{
		m: make(map[string]interface{}),
	}
}

func (d *SimpleDict) Len() int {
	return len(d.m)
}

func (d *SimpleDict) Get(key string) (val interface{}, exists bool) {
	val, exists = d.m[key]
	return
}

// Put 新增key返回1，覆盖已有key返回0
func (d *SimpleDict) Put(key string, val interface{}) (result int) {
	_, existed := d.m[key]
	d.m[key] = val
	if existed {
		return 0
	}
	return 1
}

func (d *SimpleDict) PutIfAbsent(key string, val interface{}) (result int) {
	if _, ok := d.m[key]; ok {
		return 0
	}
	d.m[key] = val
	return 1
}

func (d *SimpleDict) Remove(key string) (result int) {
	if _, ok := d.m[key]; !ok {
		return 0
	}
	delete(d.m, key)
	return 1
}

func (d *SimpleDict) ForEach(consumer Consumer) {
	for key, value := range d.m {
		if !consumer(key, value) {
			break
		}
	}
}

func (d *SimpleDict) Keys() []string {
	result := make([]string, 0, len(d.m))
	for key := range d.m {
		result = append(result, key)
	}
	return result
}

func (d *SimpleDict) Clear() {
	d.m = make(map[string]interface{})
}
