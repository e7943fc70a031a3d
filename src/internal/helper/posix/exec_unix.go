// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package posix

import "os"

// AddExecutableBits adds the owner, group and other execute bits to the file
// at path. Existing read/write bits are never cleared.
//
// Errors from stat or chmod are returned unchanged as [*fs.PathError].
func AddExecutableBits(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, withExecBits(info.Mode()))
}
