package list

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/**
 * @Author: wanglei
 * @File: sll_test
 * @Version: 1.0.0
 * @Description: Sll测试
 * @Date: 2023/09/05 16:10
 */

func items(vals ...interface{}) []interface{} {
	return append([]interface{}{}, vals...)
}

func TestMakeRoundTrip(t *testing.T) {
	cases := [][]interface{}{
		{},
		{1},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{"a", "b", "a"},
		{1, "two", 3.0, nil, []byte("x")},
	}
	for _, c := range cases {
		s := Make(c...)
		assert.Equal(t, items(c...), s.Items())
		assert.Equal(t, len(c), s.Len())
		assert.Equal(t, len(c) == 0, s.IsEmpty())
	}
}

func TestGetSet(t *testing.T) {
	s := Make(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	for i := 0; i < 10; i++ {
		val, err := s.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	require.NoError(t, s.Set(3, 33))
	val, err := s.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 33, val)

	require.NoError(t, s.Insert(0, "zero"))
	val, _ = s.Get(0)
	assert.Equal(t, "zero", val)
	assert.Equal(t, 10, s.Len())
}

func TestIndexBoundary(t *testing.T) {
	s := Make(1, 2, 3)
	for _, i := range []int{-1, -10, 3, 4, 100} {
		var indexErr *IndexError

		_, err := s.Get(i)
		assert.True(t, errors.As(err, &indexErr), "Get(%d)", i)

		err = s.Set(i, 0)
		assert.True(t, errors.As(err, &indexErr), "Set(%d)", i)

		_, err = s.Sublist(i)
		assert.True(t, errors.As(err, &indexErr), "Sublist(%d)", i)

		head, err := s.RemoveAt(i)
		assert.Nil(t, head)
		assert.True(t, errors.As(err, &indexErr), "RemoveAt(%d)", i)
	}
	// 失败的操作不修改链表
	assert.Equal(t, items(1, 2, 3), s.Items())

	empty := Make()
	_, err := empty.Get(0)
	assert.Error(t, err)
	assert.Error(t, empty.Set(0, 1))
	_, err = empty.RemoveAt(0)
	assert.Error(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestSublistSharesNodes(t *testing.T) {
	s := Make(1, 2, 3, 4)
	sub, err := s.Sublist(2)
	require.NoError(t, err)
	assert.Equal(t, items(3, 4), sub.Items())

	require.NoError(t, sub.Set(0, 99))
	val, _ := s.Get(2)
	assert.Equal(t, 99, val)

	whole, err := s.Sublist(0)
	require.NoError(t, err)
	assert.Same(t, s, whole)

	empty := Make()
	whole, err = empty.Sublist(0)
	require.NoError(t, err)
	assert.Same(t, empty, whole)
}

func TestContainsCountFind(t *testing.T) {
	a := Make(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, a.Contains(7))
	assert.False(t, a.Contains(12))
	assert.False(t, Make().Contains(7))

	s := Make(8, 9, 10, 13, 14)
	found := s.Find(13)
	require.NotNil(t, found)
	assert.Equal(t, items(13, 14), found.Items())
	assert.True(t, found.Equals(Make(13, 14)))
	assert.Nil(t, s.Find(999))
	assert.Nil(t, s.Find("heart"))

	dup := Make(10, 13, 10, 14, 10)
	assert.Equal(t, 3, dup.Count(10))
	assert.Equal(t, 0, dup.Count(9))

	even := s.FindFunc(func(val interface{}) bool {
		return val.(int)%2 == 0
	})
	assert.Equal(t, items(8, 9, 10, 13, 14), even.Items())
	assert.True(t, s.ContainsFunc(func(val interface{}) bool { return val == 14 }))
}

func TestItemEquality(t *testing.T) {
	assert.True(t, Make([]int{1, 2}).Contains([]int{1, 2}))
	assert.True(t, Make(Make(1), 2).Contains(Make(1)))
	assert.False(t, Make(1).Contains(int64(1)))
	assert.True(t, Make(nil, 1).Contains(nil))

	// struct可比较，但字段中的slice不能用==比较
	type box struct {
		X interface{}
	}
	boxed := Make(box{[]int{1}}, box{2})
	assert.True(t, boxed.Contains(box{[]int{1}}))
	assert.Equal(t, 1, boxed.Count(box{[]int{1}}))
	assert.NotNil(t, boxed.Find(box{2}))
	assert.True(t, boxed.Equals(Make(box{[]int{1}}, box{2})))
	assert.False(t, boxed.Contains(box{[]int{2}}))
}

func TestLast(t *testing.T) {
	s := Make(10, 11, 12)
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, 12, last)
	assert.True(t, s.LastSublist().Equals(Make(12)))

	_, ok = Make().Last()
	assert.False(t, ok)
	assert.Nil(t, Make().LastSublist())
}

func TestAppendKeepsIdentity(t *testing.T) {
	s := Make(1, 2)
	ref := s
	assert.Same(t, s, s.Append(3))
	last, err := ref.Get(ref.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, 3, last)

	empty := Make()
	ref = empty
	assert.Same(t, empty, empty.Extend(10, 11, 12))
	assert.Equal(t, items(10, 11, 12), ref.Items())
	assert.Same(t, empty, empty.Extend())
}

func TestPrependReturnsNewHead(t *testing.T) {
	s := Make(10, 13, 14)
	h := s.Prepend(8, 9)
	assert.NotSame(t, s, h)
	assert.Equal(t, items(8, 9, 10, 13, 14), h.Items())
	assert.Equal(t, items(10, 13, 14), s.Items())

	// 原链表成为新链表的尾部
	tail, err := h.Sublist(2)
	require.NoError(t, err)
	assert.Same(t, s, tail)

	assert.Same(t, s, s.Prepend())

	e := Make()
	h = e.Prepend(1, 2)
	assert.Equal(t, items(1, 2), h.Items())
	assert.Nil(t, h.LastSublist().next)
	assert.True(t, e.IsEmpty())
}

func TestRemoveAt(t *testing.T) {
	t.Run("ShiftHead", func(t *testing.T) {
		s := Make(10, 13, 14)
		head, err := s.RemoveAt(0)
		require.NoError(t, err)
		assert.Same(t, s, head)
		assert.Equal(t, items(13, 14), s.Items())
	})

	t.Run("CollapseHead", func(t *testing.T) {
		s := Make(5)
		head, err := s.RemoveAt(0)
		require.NoError(t, err)
		assert.Same(t, s, head)
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("EveryIndex", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			s := Make(0, 1, 2, 3, 4)
			head, err := s.RemoveAt(i)
			require.NoError(t, err)
			assert.Same(t, s, head)

			expected := items()
			for j := 0; j < 5; j++ {
				if j != i {
					expected = append(expected, j)
				}
			}
			assert.Equal(t, expected, s.Items(), "RemoveAt(%d)", i)
		}
	})

	t.Run("UntilEmpty", func(t *testing.T) {
		s := Make(1, 2, 3)
		for !s.IsEmpty() {
			_, err := s.RemoveAt(s.Len() - 1)
			require.NoError(t, err)
			assert.Equal(t, s.Len(), len(s.Items()))
		}
		assert.Equal(t, 0, s.Len())
	})
}

func TestReverse(t *testing.T) {
	s := Make(14, 13, 10, 9)
	r := s.Reverse()
	assert.Equal(t, items(9, 10, 13, 14), r.Items())
	// 原头节点成为尾节点
	assert.Same(t, s, r.LastSublist())

	single := Make(15)
	assert.Same(t, single, single.Reverse())
	empty := Make()
	assert.Same(t, empty, empty.Reverse())
	assert.True(t, empty.Reverse().Equals(Make()))
}

func TestReversedDoesNotMutate(t *testing.T) {
	for _, c := range [][]interface{}{{}, {1}, {1, 2, 3}, {"a", 2, "c", 4}} {
		s := Make(c...)
		r := s.Reversed()
		assert.Equal(t, items(c...), s.Items())
		assert.False(t, r.Overlaps(s) && len(c) > 0)
		assert.True(t, r.Reversed().Equals(s))
		for i, j := 0, len(c)-1; j >= 0; i, j = i+1, j-1 {
			val, err := r.Get(i)
			require.NoError(t, err)
			assert.Equal(t, c[j], val)
		}
	}
}

func TestConcatAliases(t *testing.T) {
	a := Make(1, 2)
	b := Make(3)
	c := a.Concat(b)
	assert.Same(t, a, c)
	assert.Equal(t, items(1, 2, 3), c.Items())

	b.Append(4)
	assert.Equal(t, items(1, 2, 3, 4), c.Items())

	// 修改a中共享的部分在b中可见
	require.NoError(t, c.Set(2, 30))
	val, _ := b.Get(0)
	assert.Equal(t, 30, val)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(Make(4)))
	assert.False(t, Make().Overlaps(Make()))

	empty := Make()
	assert.Same(t, empty, empty.Concat(Make(7, 8)))
	assert.Equal(t, items(7, 8), empty.Items())

	x := Make(1)
	assert.Equal(t, items(1), x.Concat(Make()).Items())
	assert.Equal(t, items(1), x.Concat(nil).Items())
}

func TestConcatEmptyAliasesFromSecondNode(t *testing.T) {
	src := Make(1, 2)
	dst := Make().Concat(src)
	assert.Equal(t, items(1, 2), dst.Items())

	require.NoError(t, src.Set(0, 10))
	require.NoError(t, src.Set(1, 20))
	assert.Equal(t, items(1, 20), dst.Items())

	single := Make(1)
	dst = Make().Concat(single)
	single.Append(2)
	assert.Equal(t, items(1), dst.Items())
	assert.False(t, dst.Overlaps(single))
}

func TestConcatThenEmptySource(t *testing.T) {
	setup := func() (*Sll, *Sll) {
		a, b := Make(1), Make(2)
		a.Concat(b)
		_, err := b.RemoveAt(0)
		require.NoError(t, err)
		require.True(t, b.IsEmpty())
		return a, b
	}

	t.Run("Read", func(t *testing.T) {
		a, _ := setup()
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, items(1), a.Items())
		last, ok := a.Last()
		assert.True(t, ok)
		assert.Equal(t, 1, last)
		assert.Same(t, a, a.LastSublist())
		_, err := a.Get(1)
		assert.Error(t, err)
		assert.Equal(t, "Sll[1]", a.String())
	})

	t.Run("Append", func(t *testing.T) {
		a, b := setup()
		a.Append(5)
		assert.Equal(t, items(1, 5), a.Items())
		assert.Equal(t, 2, a.Len())
		last, _ := a.Last()
		assert.Equal(t, 5, last)
		assert.True(t, b.IsEmpty())
	})

	t.Run("Reverse", func(t *testing.T) {
		a, _ := setup()
		a.Append(5)
		r := a.Reverse()
		assert.Equal(t, items(5, 1), r.Items())
	})

	t.Run("ConcatIntoEmptied", func(t *testing.T) {
		a, b := setup()
		assert.False(t, b.Overlaps(a))
		b.Concat(a)
		assert.Equal(t, items(1), b.Items())
		assert.Equal(t, items(1), a.Items())
		a.Append(3)
		assert.Equal(t, items(1, 3), a.Items())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("ConcatOntoChain", func(t *testing.T) {
		a, _ := setup()
		a.Concat(Make(7, 8))
		assert.Equal(t, items(1, 7, 8), a.Items())
	})

	t.Run("RemoveAt", func(t *testing.T) {
		a, b := setup()
		_, err := a.RemoveAt(0)
		require.NoError(t, err)
		assert.True(t, a.IsEmpty())
		assert.True(t, b.IsEmpty())

		c := Make(1, 2)
		d := Make(3)
		c.Concat(d)
		_, err = d.RemoveAt(0)
		require.NoError(t, err)
		_, err = c.RemoveAt(1)
		require.NoError(t, err)
		assert.Equal(t, items(1), c.Items())
	})
}

func TestRepeat(t *testing.T) {
	b := Make(10, 13, 14)

	zero, err := b.Repeat(0)
	require.NoError(t, err)
	assert.True(t, zero.IsEmpty())
	assert.NotSame(t, b, zero)

	one, err := b.Repeat(1)
	require.NoError(t, err)
	assert.Same(t, b, one)

	two, err := b.Repeat(2)
	require.NoError(t, err)
	assert.Equal(t, items(10, 13, 14, 10, 13, 14), two.Items())
	assert.Equal(t, 2, two.Count(10))

	three, err := b.Repeat(uint8(3))
	require.NoError(t, err)
	assert.Equal(t, items(10, 13, 14, 10, 13, 14, 10, 13, 14), three.Items())
	assert.Equal(t, 3, three.Count(10))
	assert.Equal(t, 3, three.Count(14))
	assert.Equal(t, items(10, 13, 14), b.Items())

	empty, err := Make().Repeat(5)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	for _, bad := range []interface{}{-1, 2.5, "3", nil, true, int64(-3)} {
		_, err := b.Repeat(bad)
		var typeErr *TypeError
		assert.True(t, errors.As(err, &typeErr), "Repeat(%v)", bad)
	}
}

func TestEquals(t *testing.T) {
	assert.True(t, Make(1, 2).Equals(Make(1, 2)))
	assert.True(t, Make().Equals(Make()))
	assert.False(t, Make(1, 2).Equals(Make(1)))
	assert.False(t, Make(1).Equals(Make(1, 2)))
	assert.False(t, Make(1, 2).Equals(Make(2, 1)))
	assert.False(t, Make(1, 2).Equals([]interface{}{1, 2}))
	assert.False(t, Make().Equals(nil))
	assert.False(t, Make().Equals((*Sll)(nil)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Sll[]", Make().String())
	assert.Equal(t, `Sll[1, "a", Sll[2, 3]]`, Make(1, "a", Make(2, 3)).String())
}

func TestLenTracksMutations(t *testing.T) {
	s := Make()
	check := func() {
		assert.Equal(t, len(s.Items()), s.Len())
	}
	s.Extend(1, 2, 3)
	check()
	s = s.Prepend(0)
	check()
	s, _ = s.RemoveAt(2)
	check()
	s = s.Concat(Make(7, 8))
	check()
	s = s.Reverse()
	check()
	s, _ = s.Repeat(3)
	check()
	assert.Equal(t, 15, s.Len())
}

// 原实现的自测流程
func TestSelfTest(t *testing.T) {
	a := Make(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := Make()
	assert.False(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())
	assert.True(t, a.Contains(7))
	assert.False(t, a.Contains(12))
	assert.False(t, b.Contains(7))
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, 0, b.Len())

	b.Extend(10, 11, 12)
	assert.Equal(t, items(10, 11, 12), b.Items())
	last, _ := b.Last()
	assert.Equal(t, 12, last)

	var seen []interface{}
	for it, ok := b.Iter().Next(); ok; it, ok = b.Next() {
		seen = append(seen, it)
	}
	assert.Equal(t, items(10, 11, 12), seen)

	_, err := b.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, items(10, 12), b.Items())

	require.NoError(t, b.Set(1, 13))
	b.Append(14)
	assert.Equal(t, items(10, 13, 14), b.Items())

	c, err := b.Repeat(2)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Count(10))
	assert.Equal(t, 2, c.Count(10))

	b = b.Prepend(8, 9)
	assert.Equal(t, items(8, 9, 10, 13, 14), b.Items())
	assert.True(t, b.LastSublist().Equals(Make(14)))
	assert.True(t, b.Find(13).Equals(Make(13, 14)))
	assert.Nil(t, b.Find(0))

	c = Make(15)
	b = b.Concat(c)
	assert.Equal(t, 6, b.Len())

	_, err = b.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, items(9, 10, 13, 14, 15), b.Items())
	_, err = b.RemoveAt(4)
	require.NoError(t, err)
	assert.Equal(t, items(9, 10, 13, 14), b.Items())

	for _, want := range []int{9, 10, 13, 14} {
		got, ok := b.Next()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	assert.True(t, b.Reverse().Equals(Make(14, 13, 10, 9)))
	assert.True(t, c.Reverse().Equals(Make(15)))
	assert.True(t, Make().Reverse().Equals(Make()))
}
