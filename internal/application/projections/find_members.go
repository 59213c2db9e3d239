package projections

import (
	"context"
	"strings"

	storemember "gymdesk/internal/adapters/storage/member"
	"gymdesk/internal/domain/goal"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/metric"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Search bounds.
const (
	maxSearchTermLength = 100
	maxSearchResults    = 100
)

// MemberSearcher runs sanitized name searches.
type MemberSearcher interface {
	Search(ctx context.Context, filter storemember.SearchFilter) ([]member.Member, error)
}

// GoalReader fetches a member's most recent goal.
type GoalReader interface {
	LatestByMemberID(ctx context.Context, memberID int64) (goal.FitnessGoal, error)
}

// MetricReader fetches a member's most recent metric.
type MetricReader interface {
	LatestByMemberID(ctx context.Context, memberID int64) (metric.HealthMetric, error)
}

// FindMembersQuery carries query parameters.
type FindMembersQuery struct {
	Term string
}

// MemberMatch is one search hit enriched with the member's latest goal and
// metric. Nil pointers mean the member has none recorded.
type MemberMatch struct {
	Member       member.Member
	LatestGoal   *goal.FitnessGoal
	LatestMetric *metric.HealthMetric
}

// FindMembersResult carries the query result, capped at maxSearchResults.
type FindMembersResult struct {
	Term    string
	Matches []MemberMatch
}

// FindMembersDeps holds dependencies for FindMembers.
type FindMembersDeps struct {
	MemberStore MemberSearcher
	GoalStore   GoalReader
	MetricStore MetricReader
}

// QueryFindMembers searches members by name. A single token matches either
// name; two or more tokens match first and last tokens against the name pair
// in either order. Each hit carries the member's latest goal and metric.
// PRE: term is non-empty after sanitization and at most 100 characters
// POST: Returns at most 100 matches; no state changes
func QueryFindMembers(ctx context.Context, query FindMembersQuery, deps FindMembersDeps) (FindMembersResult, error) {
	term := validate.SanitizeSearchTerm(query.Term)
	if term == "" {
		return FindMembersResult{}, errs.Invalidf("search term is required")
	}
	if len(term) > maxSearchTermLength {
		return FindMembersResult{}, errs.Invalidf("search term cannot exceed %d characters", maxSearchTermLength)
	}

	filter := storemember.SearchFilter{Term: term, Limit: maxSearchResults}
	if tokens := strings.Fields(term); len(tokens) > 1 {
		filter.First = tokens[0]
		filter.Last = tokens[len(tokens)-1]
	}

	members, err := deps.MemberStore.Search(ctx, filter)
	if err != nil {
		return FindMembersResult{}, err
	}

	result := FindMembersResult{Term: term}
	for _, m := range members {
		match := MemberMatch{Member: m}

		g, err := deps.GoalStore.LatestByMemberID(ctx, m.ID)
		if err == nil {
			match.LatestGoal = &g
		} else if !errs.IsKind(err, errs.KindNotFound) {
			return FindMembersResult{}, err
		}

		h, err := deps.MetricStore.LatestByMemberID(ctx, m.ID)
		if err == nil {
			match.LatestMetric = &h
		} else if !errs.IsKind(err, errs.KindNotFound) {
			return FindMembersResult{}, err
		}

		result.Matches = append(result.Matches, match)
	}
	return result, nil
}
