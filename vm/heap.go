package vm

// Heap is a flat byte arena. It grows by explicit allocation and is only
// released all at once by Reset.
type Heap struct {
	Data  []byte
	Limit int // Largest size the heap may grow to, or 0 for no limit.
}

// Grow appends size zeroed bytes to the heap.
func (h *Heap) Grow(size int32) (err error) {
	if size < 0 {
		err = ErrHeapRange
		return
	}

	if h.Limit > 0 && len(h.Data)+int(size) > h.Limit {
		err = ErrHeapRange
		return
	}

	h.Data = append(h.Data, make([]byte, size)...)
	return
}

func (h *Heap) Len() int {
	return len(h.Data)
}

func (h *Heap) Bytes() []byte {
	return h.Data
}

func (h *Heap) Reset() {
	if len(h.Data) > 0 {
		h.Data = h.Data[:0]
	}
}
