package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(MessageBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	bb.MustWriteByte(' ')
	bb.MustWriteString("world")

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, "hello world", bb.String())
	require.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(MessageBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(1024)

	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte("12345678"), bb.Bytes(), "Grow should preserve contents")
}

func TestByteBuffer_WriterInterface(t *testing.T) {
	bb := NewByteBuffer(MessageBufferDefaultSize)

	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), written)
	require.Equal(t, "abc", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	// Reused buffers come back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(4096)
	p.Put(bb) // should be discarded, not pooled

	bb2 := p.Get()
	require.Less(t, bb2.Cap(), 4096)
	p.Put(nil) // nil put is a no-op
}

func TestDefaultPools(t *testing.T) {
	mb := GetMessageBuffer()
	require.NotNil(t, mb)
	mb.MustWriteString("message")
	PutMessageBuffer(mb)

	sb := GetStreamBuffer()
	require.NotNil(t, sb)
	require.Equal(t, 0, sb.Len())
	PutStreamBuffer(sb)
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetMessageBuffer()
				bb.MustWriteString("x")
				PutMessageBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
