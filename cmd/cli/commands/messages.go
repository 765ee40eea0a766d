package commands

import (
	"fmt"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/core/assigner/rules"
)

// describeViolation renders a structured violation for terminal output.
// The core only carries codes and params; wording lives here.
func describeViolation(v assigner.Violation) string {
	switch v.Code {
	case rules.CodeOwnMatch:
		if dedicated, ok := v.Params["dedicatedTo"]; ok {
			return fmt.Sprintf("team is dedicated to %v and this match does not involve it", dedicated)
		}
		return "team plays in this match"
	case rules.CodeAwayMatchSameDay:
		return fmt.Sprintf("team has an away fixture the same day (%v)", v.Params["awayFixtureId"])
	case rules.CodeSimultaneousMatch:
		return fmt.Sprintf("team already holds duty on a match starting at the same time (%v)", v.Params["conflictMatchId"])
	case rules.CodeShiftContiguity:
		return fmt.Sprintf("would split the day into two shifts (gap of %v minutes)", v.Params["gapMinutes"])
	case rules.CodeOneShiftPerWeekend:
		return fmt.Sprintf("team already has a shift this weekend (match %v)", v.Params["existingMatch"])
	case rules.CodeMaxMatchesPerDay:
		return fmt.Sprintf("team already has %v duty matches that day", v.Params["count"])
	case rules.CodePointsAboveAverage:
		return fmt.Sprintf("team's %v points exceed the others' average of %.1f", v.Params["teamPoints"], v.Params["othersAverage"])
	case rules.CodePreserveFreeWeekends:
		return fmt.Sprintf("team had only %v free weekends in the last %v", v.Params["freeWeekends"], v.Params["lookback"])
	case rules.CodeConsecutiveWeekends:
		return "team serves the adjacent weekend"
	case rules.CodeRecentLoad:
		return fmt.Sprintf("team had %v assignments in the last %v days", v.Params["count"], v.Params["windowDays"])
	case rules.CodePreviousWeek:
		return fmt.Sprintf("team held duty in week %v", v.Params["isoWeek"])
	case rules.CodeHomeMatchSameDay:
		return fmt.Sprintf("team already plays at home the same day (%v)", v.Params["homeFixtureId"])
	default:
		return v.Code
	}
}

func severityMark(v assigner.Violation) string {
	switch v.Severity {
	case assigner.SeverityHard:
		return "✗"
	case assigner.SeverityBonus:
		return "+"
	default:
		return "⚠"
	}
}
