// Package feed implements the pure sort/filter transform applied to the
// operation post feed. It operates on fetched post lists only and is never
// persisted; callers keep the full list and re-apply the transform when the
// view state changes.
package feed

import (
	"sort"

	"github.com/opsboard/intranet-api/internal/dto"
	"github.com/opsboard/intranet-api/internal/models"
)

// SortKey picks which timestamp a sort orders by.
type SortKey string

const (
	SortKeyWrittenAt  SortKey = "writtenAt"
	SortKeyHappenedAt SortKey = "happenedAt"
)

// SortDirection is the order of a sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Options describes one view state: a sort and an optional type filter.
// A nil Types set means "all types"; an empty non-nil set matches nothing.
type Options struct {
	Key       SortKey
	Direction SortDirection
	Types     []models.PostType
}

// Apply filters then sorts the given posts. The input slice is not mutated.
func Apply(posts []dto.OperationPostDTO, opts Options) []dto.OperationPostDTO {
	result := Filter(posts, opts.Types)
	Sort(result, opts.Key, opts.Direction)
	return result
}

// Filter returns the posts whose type is in the selected set. A nil set
// selects everything.
func Filter(posts []dto.OperationPostDTO, types []models.PostType) []dto.OperationPostDTO {
	if types == nil {
		result := make([]dto.OperationPostDTO, len(posts))
		copy(result, posts)
		return result
	}

	selected := make(map[models.PostType]struct{}, len(types))
	for _, t := range types {
		selected[t] = struct{}{}
	}

	result := make([]dto.OperationPostDTO, 0, len(posts))
	for _, post := range posts {
		if _, ok := selected[post.Type]; ok {
			result = append(result, post)
		}
	}
	return result
}

// Sort orders posts in place by the chosen timestamp. The sort is stable so
// posts sharing a timestamp keep their stored order.
func Sort(posts []dto.OperationPostDTO, key SortKey, direction SortDirection) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]

		var before bool
		switch key {
		case SortKeyHappenedAt:
			before = a.HappenedAt.Before(b.HappenedAt)
		default:
			before = a.WrittenAt.Before(b.WrittenAt)
		}

		if direction == SortDesc {
			return !before && !timestampsEqual(a, b, key)
		}
		return before
	})
}

// ToggleType adds the type to the selected set when absent and removes it
// when present, returning the new set.
func ToggleType(selected []models.PostType, t models.PostType) []models.PostType {
	for i, existing := range selected {
		if existing == t {
			return append(append([]models.PostType{}, selected[:i]...), selected[i+1:]...)
		}
	}
	return append(append([]models.PostType{}, selected...), t)
}

func timestampsEqual(a, b dto.OperationPostDTO, key SortKey) bool {
	if key == SortKeyHappenedAt {
		return a.HappenedAt.Equal(b.HappenedAt)
	}
	return a.WrittenAt.Equal(b.WrittenAt)
}
