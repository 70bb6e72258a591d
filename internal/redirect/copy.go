package redirect

import (
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// copyFile replaces dst with the contents of src through a temporary file in
// dst's directory, so dst is either the old or the new binary, never a torn
// write. The result carries src's permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return newError(KindCopy, src, "open source", err)
	}
	defer func() { _ = in.Close() }()

	st, err := in.Stat()
	if err != nil {
		return newError(KindCopy, src, "stat source", err)
	}
	if st.IsDir() {
		return newError(KindCopy, src, "source is a directory", nil)
	}

	if err := atomic.WriteFile(dst, in); err != nil {
		return newError(KindCopy, dst, fmt.Sprintf("copy from %s", src), err)
	}
	if err := os.Chmod(dst, st.Mode().Perm()); err != nil {
		return newError(KindCopy, dst, "set permissions", err)
	}
	return nil
}

// sameFile reports whether a and b name the same file on disk.
func sameFile(a, b string) bool {
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}
