//go:build !unix

package capture

import "os"

func newPipe() (Sink, error) {
	return NewSwap(), nil
}

func newFile(f *os.File) (Sink, error) {
	return newSwapFile(f), nil
}
