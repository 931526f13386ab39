package engine

import "golang.org/x/sys/unix"

// dupTo duplicates oldfd onto newfd. Linux aarch64 has no dup2 syscall,
// so go through dup3.
func dupTo(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
