package tools

import (
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// NewExitLoopTool creates the loop-termination signal for the refinement
// demo. The refiner calls it only when the critique is the exact approval
// phrase; the surrounding loop agent is bounded by MaxIterations either way.
func NewExitLoopTool() tool.Tool {
	t, _ := functiontool.New(
		functiontool.Config{
			Name:        "exit_loop",
			Description: "Call this function ONLY when the critique is 'APPROVED', signaling the refinement loop should end.",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{
				"status":  "approved",
				"message": "Story approved. Exiting refinement loop.",
			}, nil
		})
	return t
}
