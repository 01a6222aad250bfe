package common

import (
	"fmt"
)

type Register struct {
	Val uint8

	name string
}

type Register16 struct {
	Val uint16

	name string
}

func (r Register) String() string {
	return fmt.Sprintf("%s: 0x%02x", r.name, r.Val)
}
func (r *Register) Init(name string, val uint8) {
	r.Val = val
	r.name = name
}

func (r *Register) Write(w uint8) {
	r.Val = w
}
func (r *Register) Read() uint8 {
	return r.Val
}

// Inc and Dec wrap at 8 bits and return the new value
func (r *Register) Inc() uint8 {
	r.Val++
	return r.Val
}
func (r *Register) Dec() uint8 {
	r.Val--
	return r.Val
}

func (r Register16) String() string {
	return fmt.Sprintf("%s: 0x%04x", r.name, r.Val)
}
func (r *Register16) Init(name string, val uint16) {
	r.Val = val
	r.name = name
}
func (r *Register16) Write(w uint16) {
	r.Val = w
}
func (r *Register16) Read() uint16 {
	return r.Val
}
