package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mdpgraph/decomp"
	"github.com/katalvlaran/mdpgraph/stateset"
)

func TestBlock_InsertContainsLen(t *testing.T) {
	b := decomp.NewBlock(10)
	assert.True(t, b.Empty())

	b.Insert(3)
	b.Insert(7)
	assert.True(t, b.Contains(3))
	assert.False(t, b.Contains(4))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []int{3, 7}, b.Members())
}

func TestBlock_EraseBySet(t *testing.T) {
	b := decomp.NewBlock(10)
	for _, i := range []int{1, 2, 3, 4, 5} {
		b.Insert(i)
	}

	rm := stateset.New(10)
	rm.Insert(2)
	rm.Insert(4)
	rm.Insert(9) // not a member; erase ignores it
	b.Erase(rm)

	assert.Equal(t, []int{1, 3, 5}, b.Members())
}

func TestBlock_FromSetAdopts(t *testing.T) {
	s := stateset.New(6)
	s.Insert(0)
	s.Insert(5)
	b := decomp.FromSet(s)
	assert.Equal(t, []int{0, 5}, b.Members())
	assert.Same(t, s, b.Set())
}

func TestBlock_EachAscendingEarlyExit(t *testing.T) {
	b := decomp.NewBlock(100)
	for _, i := range []int{90, 10, 50} {
		b.Insert(i)
	}

	var got []int
	b.Each(func(i int) bool {
		got = append(got, i)

		return len(got) < 2
	})
	assert.Equal(t, []int{10, 50}, got)
}

func TestDecomposition_OrderAndAccess(t *testing.T) {
	b1 := decomp.NewBlock(4)
	b1.Insert(0)
	b2 := decomp.NewBlock(4)
	b2.Insert(1)

	d := decomp.New([]*decomp.Block{b1, b2})
	assert.Equal(t, 2, d.Size())
	assert.Same(t, b1, d.Block(0))
	assert.Same(t, b2, d.Block(1))

	var order []int
	d.Each(func(i int, b *decomp.Block) bool {
		order = append(order, i)

		return true
	})
	assert.Equal(t, []int{0, 1}, order)

	blocks := d.Blocks()
	blocks[0] = nil // copies do not alias the container
	assert.Same(t, b1, d.Block(0))
}

func TestDecomposition_Empty(t *testing.T) {
	d := decomp.New[*decomp.Block](nil)
	assert.Equal(t, 0, d.Size())
	assert.Empty(t, d.Blocks())
}
