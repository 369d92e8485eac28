package agent

// Node identifies a state of the control loop.
type Node string

const (
	NodePlan  Node = "plan"
	NodeTool  Node = "tool"
	NodeSolve Node = "solve"
	NodeEnd   Node = "end"
)

// Route decides where control goes after a tool step: to the solver once every
// step has a result, otherwise back to the tool node.
func Route(stepsTotal, resultsCompleted int) Node {
	if resultsCompleted >= stepsTotal {
		return NodeSolve
	}
	return NodeTool
}

// next is the transition function of the control loop.
func next(n Node, s *State) Node {
	switch n {
	case NodePlan:
		return NodeTool
	case NodeTool:
		return Route(len(s.Steps), s.Results.Len())
	case NodeSolve:
		return NodeEnd
	}
	return NodeEnd
}
