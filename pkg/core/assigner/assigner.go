// Package assigner implements the jury duty assignment engine: a
// constraint evaluator, a fairness-aware candidate scorer and a greedy
// chronological assignment loop that produces deterministic, explainable
// decisions.
package assigner

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jakechorley/juryplan/pkg/db"
)

// MatchState tracks where a match is in the assignment state machine
type MatchState string

const (
	StateUnassigned   MatchState = "Unassigned"
	StateEvaluating   MatchState = "Evaluating"
	StateAssigned     MatchState = "Assigned"
	StateUnassignable MatchState = "Unassignable"
)

// ReasonNoSuitableTeam is the diagnostic recorded for unassignable matches
const ReasonNoSuitableTeam = "no suitable team found"

// Options configures a batch run
type Options struct {
	// From skips matches starting before this time (zero = all)
	From time.Time

	// MaxAssignments bounds how many matches are assigned per invocation
	// (0 = unbounded)
	MaxAssignments int

	// Now is the creation timestamp stamped on produced assignments
	Now time.Time
}

// Decision is the full decision trail for one processed match
type Decision struct {
	Match db.Match
	State MatchState

	// Team and Score are set when State is StateAssigned
	Team  *db.Team
	Score float64

	// Warnings are the soft violations and bonuses of the chosen candidate
	Warnings []Violation

	// Reason is set when State is StateUnassignable
	Reason string
}

// Outcome is the result of a batch run. Assignments are the rows to
// persist; nothing has been written yet when the engine returns.
type Outcome struct {
	Decisions         []Decision
	Assignments       []db.Assignment
	AssignedCount     int
	UnassignableCount int
}

// AssignmentAudit is the re-validation result for one existing assignment
type AssignmentAudit struct {
	Assignment db.Assignment
	Match      db.Match
	Team       db.Team
	Valid      bool

	// Violations holds the hard violations making the assignment invalid
	Violations []Violation

	// Warnings holds accumulated soft violations
	Warnings []Violation
}

// Engine orchestrates evaluator and scorer over candidate sets
type Engine struct {
	evaluator *Evaluator
	newID     func() string
}

// NewEngine creates an engine over a prepared evaluator
func NewEngine(evaluator *Evaluator) *Engine {
	return &Engine{evaluator: evaluator, newID: uuid.NewString}
}

// Evaluator exposes the engine's evaluator for coverage-gap reporting
func (e *Engine) Evaluator() *Evaluator {
	return e.evaluator
}

// AutoAssign processes every assignable match in chronological order,
// committing the best candidate into the working set so later matches see
// earlier decisions. A match without eligible candidates is recorded as
// unassignable and the batch continues.
func (e *Engine) AutoAssign(ctx *Context, opts Options) *Outcome {
	outcome := &Outcome{}

	for _, match := range ctx.Matches {
		if opts.MaxAssignments > 0 && outcome.AssignedCount >= opts.MaxAssignments {
			break
		}
		if !opts.From.IsZero() && match.StartTime.Before(opts.From) {
			continue
		}
		if match.Locked || ctx.HasAssignment(match.ID) {
			continue
		}

		decision := e.decide(ctx, match)
		if decision.State == StateAssigned {
			assignment := db.Assignment{
				ID:        e.newID(),
				MatchID:   match.ID,
				TeamID:    decision.Team.ID,
				CreatedAt: opts.Now,
			}
			ctx.Add(assignment)
			outcome.Assignments = append(outcome.Assignments, assignment)
			outcome.AssignedCount++
		} else {
			outcome.UnassignableCount++
		}
		outcome.Decisions = append(outcome.Decisions, decision)
	}

	return outcome
}

// decide evaluates every candidate team for one match and picks the best
func (e *Engine) decide(ctx *Context, match db.Match) Decision {
	decision := Decision{Match: match, State: StateEvaluating}

	var best *CandidateScore
	for i, team := range ctx.Teams {
		if team.Excluded {
			continue
		}
		violations := e.evaluator.Evaluate(match, team, ctx)
		score := ScoreCandidate(team, match, violations, ctx, i)
		if !score.Eligible {
			continue
		}
		if best == nil || Better(score, *best) {
			s := score
			best = &s
		}
	}

	if best == nil {
		decision.State = StateUnassignable
		decision.Reason = ReasonNoSuitableTeam
		return decision
	}

	decision.State = StateAssigned
	decision.Team = &best.Team
	decision.Score = best.Value
	decision.Warnings = best.Violations
	return decision
}

// Recommend ranks every candidate team for a single match and returns the
// top n (all candidates when n <= 0), ineligible ones last.
func (e *Engine) Recommend(ctx *Context, match db.Match, n int) []CandidateScore {
	scores := make([]CandidateScore, 0, len(ctx.Teams))
	for i, team := range ctx.Teams {
		if team.Excluded {
			continue
		}
		violations := e.evaluator.Evaluate(match, team, ctx)
		scores = append(scores, ScoreCandidate(team, match, violations, ctx, i))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return Better(scores[i], scores[j])
	})

	if n > 0 && len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// Revalidate re-runs the evaluator against every existing assignment
// without mutating state. Each assignment is audited as if it had not been
// made yet, so it does not conflict with itself.
func (e *Engine) Revalidate(ctx *Context) []AssignmentAudit {
	assignments := make([]db.Assignment, len(ctx.Assignments))
	copy(assignments, ctx.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		mi, _ := ctx.MatchByID(assignments[i].MatchID)
		mj, _ := ctx.MatchByID(assignments[j].MatchID)
		if !mi.StartTime.Equal(mj.StartTime) {
			return mi.StartTime.Before(mj.StartTime)
		}
		return assignments[i].ID < assignments[j].ID
	})

	audits := make([]AssignmentAudit, 0, len(assignments))
	for _, a := range assignments {
		match, okMatch := ctx.MatchByID(a.MatchID)
		team := teamByID(ctx.Teams, a.TeamID)
		audit := AssignmentAudit{Assignment: a, Match: match}
		if team != nil {
			audit.Team = *team
		}
		if !okMatch || team == nil {
			audit.Valid = false
			audits = append(audits, audit)
			continue
		}

		ctx.Remove(a.ID)
		violations := e.evaluator.Evaluate(match, *team, ctx)
		ctx.Add(a)

		for _, v := range violations {
			if v.Severity == SeverityHard {
				audit.Violations = append(audit.Violations, v)
			} else {
				audit.Warnings = append(audit.Warnings, v)
			}
		}
		audit.Valid = len(audit.Violations) == 0
		audits = append(audits, audit)
	}
	return audits
}

func teamByID(teams []db.Team, id string) *db.Team {
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i]
		}
	}
	return nil
}
