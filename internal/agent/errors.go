package agent

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. Each typed error below matches
// exactly one of them.
var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrToolInvocation = errors.New("tool invocation failed")
	ErrMalformedStep  = errors.New("malformed step")
	ErrPolicyDenied   = errors.New("denied by policy")
)

// UnknownToolError is returned when a step names a tool other than Google or LLM.
type UnknownToolError struct {
	StepID string
	Tool   string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("step %s: unknown tool %q", e.StepID, e.Tool)
}

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// ToolInvocationError wraps a failure of the search or language model collaborator.
type ToolInvocationError struct {
	StepID string
	Tool   ToolKind
	Err    error
}

func (e *ToolInvocationError) Error() string {
	return fmt.Sprintf("step %s: %s call failed: %v", e.StepID, e.Tool, e.Err)
}

func (e *ToolInvocationError) Unwrap() error { return e.Err }

func (e *ToolInvocationError) Is(target error) bool { return target == ErrToolInvocation }

// MalformedStepError reports a step that cannot be executed as written,
// such as a step ID that was already used earlier in the plan.
type MalformedStepError struct {
	StepID string
	Reason string
}

func (e *MalformedStepError) Error() string {
	return fmt.Sprintf("step %s: %s", e.StepID, e.Reason)
}

func (e *MalformedStepError) Is(target error) bool { return target == ErrMalformedStep }

type PolicyDeniedError struct {
	StepID string
	Reason string
}

func (e *PolicyDeniedError) Error() string {
	return fmt.Sprintf("step %s: denied: %s", e.StepID, e.Reason)
}

func (e *PolicyDeniedError) Is(target error) bool { return target == ErrPolicyDenied }
