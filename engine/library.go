//go:build linux || darwin

package engine

// #cgo linux LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
import "C"

import (
	"unsafe"

	"github.com/hq9000/vsthost/errors"
)

// library owns a dlopen handle. Exactly one owner closes it.
type library struct {
	handle unsafe.Pointer
	path   string
}

func openLibrary(path string) (*library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_LOCAL)
	if handle == nil {
		return nil, errors.Library("open "+path, dlError())
	}
	return &library{handle: handle, path: path}, nil
}

// symbol returns the address of name, or nil if the library does not
// export it.
func (l *library) symbol(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	// Clear any stale error state so a nil result is unambiguous.
	C.dlerror()
	return C.dlsym(l.handle, cname)
}

func (l *library) close() error {
	if l.handle == nil {
		return nil
	}
	if C.dlclose(l.handle) != 0 {
		return errors.Library("close "+l.path, dlError())
	}
	l.handle = nil
	return nil
}

// dlError wraps the thread-local dlfcn error string, if any.
func dlError() error {
	msg := C.dlerror()
	if msg == nil {
		return nil
	}
	return errors.New(errors.PhaseLoad, errors.KindLibrary, "%s", C.GoString(msg))
}
