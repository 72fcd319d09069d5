package demos

import "fmt"

const architectureGuide = `Choose the right pattern for your use case:

LLM-ORCHESTRATED (Demo 1)
   When: dynamic decisions needed, flexible workflow
   Example: research + summarize based on content
   Best for: content-dependent workflows, adaptive responses
   Pros: flexible, adaptive, intelligent routing
   Cons: less predictable, harder to debug

SEQUENTIAL (Demo 2)
   When: order matters, each step builds on the previous one
   Example: outline, then write, then edit
   Best for: assembly-line processes, dependent steps
   Pros: predictable, deterministic, easy to debug
   Cons: slower, rigid structure

PARALLEL (Demo 3)
   When: independent tasks, speed matters, no dependencies
   Example: research several topics simultaneously
   Best for: independent research, data gathering, concurrent tasks
   Pros: fast, efficient, scalable
   Cons: requires independent tasks, more coordination

LOOP (Demo 4)
   When: iterative improvement needed, quality refinement
   Example: write, critique, improve, repeat
   Best for: quality control, iterative refinement
   Pros: high quality output, self-improving
   Cons: slower, may not converge without a hard iteration cap

Quick decisions:
 - Do steps depend on each other in a fixed order?    -> Sequential
 - Are the tasks independent of each other?           -> Parallel
 - Does the output need repeated review passes?       -> Loop
 - Should the model decide the workflow at runtime?   -> LLM-orchestrated`

// ShowGuide prints the architecture decision guide.
func (d *Demos) ShowGuide() {
	d.printHeader("AGENT ARCHITECTURE DECISION GUIDE")
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, architectureGuide)
}
