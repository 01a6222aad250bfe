package famicom

import (
	"fmt"

	"github.com/famicore/famicore/nes/cpu"
)

const historySize = 16

type historyEntry struct {
	pc  uint16
	op  cpu.Opcode
	op1 uint8
	op2 uint8
}

func (e historyEntry) String() string {
	return fmt.Sprintf("0x%04x: %s %s", e.pc, e.op.Name, e.op.Operand(e.op1, e.op2))
}

// history is a ring of the last instructions that ran, the oldest entry
// is overwritten once it is full
type history struct {
	buffer []historyEntry

	// next index to write to
	head int
	used int
}

func newHistory(size int) history {
	if size < 2 {
		panic("Invalid size for the history (<2)")
	}
	return history{buffer: make([]historyEntry, size)}
}

func (h *history) push(e historyEntry) {
	h.buffer[h.head] = e
	h.head = h.getNext(h.head)
	if h.used < len(h.buffer) {
		h.used++
	}
}

func (h *history) getNext(index int) int {
	return (index + 1) % len(h.buffer)
}

// entries returns the recorded instructions, oldest first
func (h *history) entries() []historyEntry {
	out := make([]historyEntry, 0, h.used)
	tail := (h.head - h.used + len(h.buffer)) % len(h.buffer)
	for i := 0; i < h.used; i++ {
		out = append(out, h.buffer[tail])
		tail = h.getNext(tail)
	}
	return out
}

func (h *history) reset() {
	h.head = 0
	h.used = 0
}
