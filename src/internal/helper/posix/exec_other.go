// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix

package posix

// AddExecutableBits is a no-op on non-Unix systems because they have no
// executable permission bit.
func AddExecutableBits(path string) error {
	return nil
}
