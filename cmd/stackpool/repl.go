package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pavanmanishd/stackpool"
	"github.com/pavanmanishd/stackpool/session"
)

var errUsage = errors.New("usage")

const help = `commands:
  pool N          replace the pool with one sized for N nodes
  empty           replace the pool with an empty one
  delete          release the pool
  stack           print the head of a new empty stack
  push V H        push V onto stack H, print the new head
  pop H           pop stack H, print the new head
  value H         print the top value of stack H
  size H          print the size of stack H
  print H         dump stack H
  unroll H        drain stack H, printing its values
  stats           print pool metrics
  quit            exit`

type repl struct {
	s      *session.Session
	in     *bufio.Scanner
	out    io.Writer
	prompt bool
}

func newRepl(s *session.Session, in io.Reader, out io.Writer) *repl {
	return &repl{
		s:   s,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (r *repl) run() error {
	for {
		if r.prompt {
			fmt.Fprint(r.out, "stackpool=> ")
		}
		if !r.in.Scan() {
			return r.in.Err()
		}
		args := strings.Fields(r.in.Text())
		if len(args) == 0 {
			continue
		}

		quit, err := r.exec(args)
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

func (r *repl) exec(args []string) (bool, error) {
	switch args[0] {
	case "pool":
		n, err := intArg(args, 1, "pool N")
		if err != nil {
			return false, err
		}
		r.s.Init(n)
		fmt.Fprintln(r.out, "ok")
	case "empty":
		r.s.InitEmpty()
		fmt.Fprintln(r.out, "ok")
	case "delete":
		r.s.Delete()
		fmt.Fprintln(r.out, "ok")
	case "stack":
		fmt.Fprintln(r.out, r.s.Stack())
	case "push":
		v, err := intArg(args, 1, "push V H")
		if err != nil {
			return false, err
		}
		h, err := handleArg(args, 2, "push V H")
		if err != nil {
			return false, err
		}
		if h, err = r.s.Push(v, h); err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, h)
	case "pop":
		h, err := handleArg(args, 1, "pop H")
		if err != nil {
			return false, err
		}
		if h, err = r.s.Pop(h); err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, h)
	case "value":
		h, err := handleArg(args, 1, "value H")
		if err != nil {
			return false, err
		}
		v, err := r.s.Value(h)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, v)
	case "size":
		h, err := handleArg(args, 1, "size H")
		if err != nil {
			return false, err
		}
		n, err := r.s.Size(h)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, n)
	case "print":
		h, err := handleArg(args, 1, "print H")
		if err != nil {
			return false, err
		}
		return false, r.s.Print(r.out, h)
	case "unroll":
		h, err := handleArg(args, 1, "unroll H")
		if err != nil {
			return false, err
		}
		values, err := r.s.Unroll(h)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "The given stack has size %d\n", len(values))
		for _, v := range values {
			fmt.Fprintln(r.out, v)
		}
	case "stats":
		m, err := r.s.Metrics()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "nodes=%d free=%d in_use=%d capacity=%d\n", m.Len, m.FreeCount, m.InUse, m.Capacity)
	case "help":
		fmt.Fprintln(r.out, help)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, try help", args[0])
	}
	return false, nil
}

func intArg(args []string, i int, usage string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errUsage, usage, err)
	}
	return n, nil
}

func handleArg(args []string, i int, usage string) (stackpool.Handle, error) {
	if i >= len(args) {
		return stackpool.End, fmt.Errorf("%w: %s", errUsage, usage)
	}
	n, err := strconv.ParseUint(args[i], 10, 32)
	if err != nil {
		return stackpool.End, fmt.Errorf("%w: %s: %w", errUsage, usage, err)
	}
	return stackpool.Handle(n), nil
}
