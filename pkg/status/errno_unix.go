//go:build unix

package status

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

var errnoNames = []Info{
	{Code: -int(unix.EPERM), Name: "EPERM"},
	{Code: -int(unix.ENOENT), Name: "ENOENT"},
	{Code: -int(unix.EINTR), Name: "EINTR"},
	{Code: -int(unix.EIO), Name: "EIO"},
	{Code: -int(unix.ENXIO), Name: "ENXIO"},
	{Code: -int(unix.EBADF), Name: "EBADF"},
	{Code: -int(unix.EAGAIN), Name: "EAGAIN"},
	{Code: -int(unix.ENOMEM), Name: "ENOMEM"},
	{Code: -int(unix.EACCES), Name: "EACCES"},
	{Code: -int(unix.EFAULT), Name: "EFAULT"},
	{Code: -int(unix.EBUSY), Name: "EBUSY"},
	{Code: -int(unix.EEXIST), Name: "EEXIST"},
	{Code: -int(unix.ENODEV), Name: "ENODEV"},
	{Code: -int(unix.EINVAL), Name: "EINVAL"},
	{Code: -int(unix.ENOTTY), Name: "ENOTTY"},
	{Code: -int(unix.ENOSYS), Name: "ENOSYS"},
	{Code: -int(unix.EPROTO), Name: "EPROTO"},
	{Code: -int(unix.EOPNOTSUPP), Name: "EOPNOTSUPP"},
	{Code: -int(unix.ETIMEDOUT), Name: "ETIMEDOUT"},
	{Code: -int(unix.ECANCELED), Name: "ECANCELED"},
}

func platformErrnoName(n int) string {
	return unix.ErrnoName(syscall.Errno(n))
}

// maxErrno bounds the reverse name scan. Linux and the BSDs stay well
// below it.
const maxErrno = 255

var (
	errnoValuesOnce sync.Once
	errnoValues     map[string]int
)

func platformErrnoValue(name string) int {
	errnoValuesOnce.Do(func() {
		errnoValues = make(map[string]int, maxErrno)
		for n := 1; n <= maxErrno; n++ {
			if s := unix.ErrnoName(syscall.Errno(n)); s != "" {
				if _, dup := errnoValues[s]; !dup {
					errnoValues[s] = n
				}
			}
		}
	})
	return errnoValues[name]
}
