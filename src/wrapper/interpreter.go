// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import "os/exec"

// interpreterCandidates are looked up on PATH, in order, by DefaultInterpreter.
var interpreterCandidates = []string{"python3", "python"}

// FallbackInterpreter is used when no candidate interpreter is on PATH.
const FallbackInterpreter = "python"

// DefaultInterpreter returns the interpreter the Windows payload runs under
// when none is given: the first of python3 and python found on PATH, or
// FallbackInterpreter.
func DefaultInterpreter() string {
	for _, name := range interpreterCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return FallbackInterpreter
}
