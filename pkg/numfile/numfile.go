// Package numfile reads small text files holding a single number.
//
// ReadNumber reports failures through the demoerr taxonomy; ReadNumberErased
// performs the same steps but hands back the raw low-level error.
package numfile

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/ib-77/fallible/pkg/demoerr"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// ReadText returns the whole content of path.
func ReadText(fsys billy.Basic, path string) rop.Result[string, *demoerr.Error] {
	return solo.Try(readText(fsys, path), demoerr.FromIO, solo.Succeed[string, *demoerr.Error])
}

// ReadNumber reads path and parses its trimmed content as an unsigned 32-bit
// integer.
func ReadNumber(fsys billy.Basic, path string) rop.Result[uint32, *demoerr.Error] {
	return solo.AndThen(ReadText(fsys, path), func(text string) rop.Result[uint32, *demoerr.Error] {
		return parseUint32(text, demoerr.FromParse)
	})
}

func ReadNumberErased(fsys billy.Basic, path string) rop.Result[uint32, error] {
	return solo.AndThen(readText(fsys, path), func(text string) rop.Result[uint32, error] {
		return parseUint32(text, erase)
	})
}

func erase(err error) error { return err }

func readText(fsys billy.Basic, path string) rop.Result[string, error] {
	return solo.AndThen(rop.FromTuple(fsys.Open(path)), func(f billy.File) rop.Result[string, error] {
		defer func() { _ = f.Close() }()

		return solo.Map(rop.FromTuple(io.ReadAll(f)), func(content []byte) string {
			return string(content)
		})
	})
}

func parseUint32[E any](text string, convert rop.Conversion[error, E]) rop.Result[uint32, E] {
	return solo.Map(solo.Lift[uint64](convert)(strconv.ParseUint(strings.TrimSpace(text), 10, 32)),
		func(n uint64) uint32 { return uint32(n) })
}
