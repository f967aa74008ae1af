//go:build !linux

package crown

import "context"

type Reader struct{}

func Open(paths ...string) (*Reader, error) { return nil, ErrUnsupported }

func (r *Reader) Close() error { return nil }

func (r *Reader) Run(ctx context.Context, out chan<- Input) error { return ErrUnsupported }
