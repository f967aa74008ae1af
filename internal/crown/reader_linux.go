//go:build linux

package crown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// pollTimeoutMS bounds how long Run waits before rechecking its context.
const pollTimeoutMS = 100

// Reader multiplexes one or more evdev devices with epoll.
type Reader struct {
	files []*os.File
}

// Open opens the given /dev/input/event* devices for reading.
func Open(paths ...string) (*Reader, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input devices provided")
	}
	r := &Reader{}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("open crown device: %w", err)
		}
		r.files = append(r.files, f)
	}
	return r, nil
}

func (r *Reader) Close() error {
	var errs []error
	for _, f := range r.files {
		errs = append(errs, f.Close())
	}
	r.files = nil
	return errors.Join(errs...)
}

// Run reads from every device and sends decoded input to out until ctx is
// done or a device fails. It returns nil when ctx ends the loop.
func (r *Reader) Run(ctx context.Context, out chan<- Input) error {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return fmt.Errorf("epoll_create1: %w", err)
	}
	defer unix.Close(epfd)

	fdToFile := make(map[int]*os.File, len(r.files))
	for _, f := range r.files {
		fd := int(f.Fd())
		fdToFile[fd] = f
		event := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &event); err != nil {
			return fmt.Errorf("epoll_ctl_add fd=%d: %w", fd, err)
		}
	}

	const maxEvents = 32
	epollEvents := make([]unix.EpollEvent, maxEvents)
	buf := make([]byte, eventSize)

	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := unix.EpollWait(epfd, epollEvents, pollTimeoutMS)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return fmt.Errorf("epoll_wait: %w", err)
		}
		for i := 0; i < n; i++ {
			fd := int(epollEvents[i].Fd)
			f := fdToFile[fd]
			if epollEvents[i].Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
				return fmt.Errorf("device error/hangup: %s (fd=%d)", f.Name(), fd)
			}
			if _, err := f.Read(buf); err != nil {
				return fmt.Errorf("read from %s: %w", f.Name(), err)
			}
			in, ok := decodeRecord(buf)
			if !ok {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
