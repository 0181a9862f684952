//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory mapping of a whole file.
type File struct {
	Data []byte   // The memory-mapped byte slice
	File *os.File // The underlying opened file
	Size int      // Total size of the underlying file
}

// Open maps filePath read-only in its entirety.
//
// An empty file cannot be mapped; Open returns a File with nil Data for it
// so callers can treat it as zero-length input.
func Open(filePath string) (*File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to get file info for %q: %w", filePath, err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%q is a directory", filePath)
	}

	size := int(fi.Size())
	if size == 0 {
		return &File{File: f}, nil
	}

	// PROT_READ: pages may be read.
	// MAP_SHARED: the mapping reflects the file, nothing is copied.
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap file %q with length %d: %w", filePath, size, err)
	}

	return &File{
		Data: data,
		File: f,
		Size: size,
	}, nil
}

// Close unmaps the memory region and closes the underlying file.
func (mf *File) Close() error {
	var err error
	if mf.Data != nil {
		err = unix.Munmap(mf.Data)
		if err != nil {
			return fmt.Errorf("failed to munmap: %w", err)
		}
		mf.Data = nil // Clear the reference to the unmapped memory
	}

	if mf.File != nil {
		closeErr := mf.File.Close()
		if closeErr != nil {
			return fmt.Errorf("failed to close file: %w", closeErr)
		}
		mf.File = nil
	}
	return err
}
