package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/vm"
)

// opKind identifies one mutator operation.
type opKind int

const (
	opInt opKind = iota
	opNil
	opPair
	opPop
	opDup
	opSetHead
	opSetTail
	opGC
)

// op is one parsed script token.
type op struct {
	kind  opKind
	value int64
	token string
}

var errBadOp = errors.New("unknown operation")

// parseOps turns tokens into operations.
func parseOps(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))
	for i, tok := range tokens {
		o := op{token: tok}
		switch strings.ToLower(tok) {
		case "nil":
			o.kind = opNil
		case "pair":
			o.kind = opPair
		case "pop":
			o.kind = opPop
		case "dup":
			o.kind = opDup
		case "sethead":
			o.kind = opSetHead
		case "settail":
			o.kind = opSetTail
		case "gc":
			o.kind = opGC
		default:
			n, err := strconv.ParseInt(tok, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("token %d %q: %w", i, tok, errBadOp)
			}
			o.kind = opInt
			o.value = n
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// loadOps collects tokens from args and, if set, the script file. Script
// lines may carry # comments.
func loadOps(args []string) ([]op, error) {
	tokens := append([]string(nil), args...)
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if i := strings.IndexByte(line, '#'); i >= 0 {
				line = line[:i]
			}
			tokens = append(tokens, strings.Fields(line)...)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read script: %w", err)
		}
	}
	return parseOps(tokens)
}

// applyOps runs ops against v, stopping at the first error.
func applyOps(v *vm.VM, ops []op) error {
	for i, o := range ops {
		if err := applyOp(v, o); err != nil {
			return fmt.Errorf("op %d %q: %w", i, o.token, err)
		}
		printVerbose("%4d %-8s depth=%d live=%d\n", i, o.token, v.Roots().Len(), v.LiveObjectCount())
	}
	return nil
}

func applyOp(v *vm.VM, o op) error {
	switch o.kind {
	case opInt:
		_, err := v.PushInt(o.value)
		return err
	case opNil:
		return v.Push(heap.Nil)
	case opPair:
		_, err := v.PushPair()
		return err
	case opPop:
		_, err := v.Pop()
		return err
	case opDup:
		top, err := v.Peek(0)
		if err != nil {
			return err
		}
		return v.Push(top)
	case opSetHead, opSetTail:
		src, err := v.Pop()
		if err != nil {
			return err
		}
		dst, err := v.Peek(0)
		if err != nil {
			// Put the operand back so the stack is unchanged.
			_ = v.Push(src)
			return err
		}
		obj, err := v.Deref(dst)
		if err != nil {
			_ = v.Push(src)
			return err
		}
		if o.kind == opSetHead {
			err = obj.SetHead(src)
		} else {
			err = obj.SetTail(src)
		}
		if err != nil {
			_ = v.Push(src)
		}
		return err
	case opGC:
		v.Collect()
		return nil
	}
	return errBadOp
}

// execOps builds a VM from the global flags and runs the script on it. The
// caller closes the VM.
func execOps(args []string) (*vm.VM, error) {
	ops, err := loadOps(args)
	if err != nil {
		return nil, err
	}
	v, err := newVM()
	if err != nil {
		return nil, fmt.Errorf("failed to create vm: %w", err)
	}
	printVerbose("VM: %d heap slots, %d stack slots, %d ops\n", v.Heap().Slots(), v.Roots().Cap(), len(ops))
	if err := applyOps(v, ops); err != nil {
		_ = v.Close()
		return nil, err
	}
	return v, nil
}
