package sim

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// LogAgents dumps one line per agent: pose, state and surface attachment.
func (s *Sim) LogAgents() {
	Logf("=== Agents @ tick %d ===", s.tick)

	query := s.agentFilter.Query()
	for query.Next() {
		pos, _, agent := query.Get()
		driver := agent.Controller.Driver()
		n := agent.Controller.SurfaceNormal()
		Logf("  agent %-3d %-16s pos=(%7.1f %7.1f %7.1f) normal=(%5.2f %5.2f %5.2f) on_surface=%t",
			agent.ID,
			agent.Controller.State(),
			pos.Pos.X(), pos.Pos.Y(), pos.Pos.Z(),
			n.X(), n.Y(), n.Z(),
			driver.OnSurface(),
		)
	}
}
