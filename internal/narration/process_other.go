//go:build !unix

package narration

import "os"

func suspendProcess(*os.Process) error { return ErrUnsupported }
func resumeProcess(*os.Process) error  { return ErrUnsupported }
