// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package stub provides process-wide access to the prebuilt native launcher
// used by the Windows wrapper format.
//
// The launcher is an opaque binary blob. It is read at most once per process
// from the embedded assets directory ([Load]) or once per path from an
// explicit override file ([LoadFile]), and is never modified afterwards.
//
// Example usage:
//
//	blob, err := stub.Load()
//	if err != nil {
//		return fmt.Errorf("failed to load launcher stub: %w", err)
//	}
package stub
