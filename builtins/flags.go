package builtins

// Flags mirrors the driver's bit-flag state: CLEAR_OUTPUT and
// EXIT are raised by builtins/commands and interpreted by the driver's
// result-processor after each top-level evaluation. FailOnError is part of
// the flag set but nothing reads it: the driver's EvalString and LoadFile
// stop on the first error whether or not it is set.
type Flags struct {
	Interactive bool
	FailOnError bool
	ClearOutput bool
	Exit        bool
	Code        int
	Message     string
}

// Reset clears the one-shot flags (ClearOutput, Exit) between top-level
// evaluations, leaving Interactive/FailOnError untouched.
func (f *Flags) Reset() {
	f.ClearOutput = false
	f.Exit = false
	f.Code = 0
	f.Message = ""
}
